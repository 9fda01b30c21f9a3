package metric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*VendingMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewVendingMetrics(provider.Meter(VendingInstrumentationName))
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestVendingMetrics_Counters(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.IncrementCoinsInserted(ctx, "1.00")
	m.IncrementCoinsInserted(ctx, "0.50")
	m.IncrementCoinsRejected(ctx, "INVALID_COIN")
	m.RecordSale(ctx, "P3", "Water", 0.90, 0.60)
	m.RecordRefund(ctx, 2.00)
	m.IncrementResets(ctx)

	got := collect(t, reader)

	inserted := got["vending.coins.inserted"].Data.(metricdata.Sum[int64])
	var total int64
	for _, dp := range inserted.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	revenue := got["vending.revenue"].Data.(metricdata.Sum[float64])
	require.Len(t, revenue.DataPoints, 1)
	assert.InDelta(t, 0.90, revenue.DataPoints[0].Value, 1e-9)

	change := got["vending.change.returned"].Data.(metricdata.Sum[float64])
	require.Len(t, change.DataPoints, 1)
	assert.InDelta(t, 0.60, change.DataPoints[0].Value, 1e-9)

	assert.Contains(t, got, "vending.coins.rejected")
	assert.Contains(t, got, "vending.refunded")
	assert.Contains(t, got, "vending.resets")
}

func TestVendingMetrics_StockGauge(t *testing.T) {
	m, reader := newTestMetrics(t)

	reg, err := m.RegisterProductStockGauge(func(context.Context) []StockLevel {
		return []StockLevel{
			{ProductID: "P1", ProductName: "Coke", Quantity: 8},
			{ProductID: "P3", ProductName: "Water", Quantity: 0},
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Unregister() })

	gauge := collect(t, reader)["product.stock"].Data.(metricdata.Gauge[int64])
	require.Len(t, gauge.DataPoints, 2)
}

func TestNewNoopVendingMetrics(t *testing.T) {
	m := NewNoopVendingMetrics()
	require.NotNil(t, m)
	assert.NotPanics(t, func() {
		m.RecordSale(context.Background(), "P1", "Coke", 1.5, 0)
	})
}
