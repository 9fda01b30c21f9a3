package metric

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	VendingInstrumentationName = "github.com/narender/vending-machine/vending-service"

	AttrCoinDenomination = "vending.coin.denomination"
	AttrErrorCode        = "vending.error.code"
	AttrProductID        = "product.id"
	AttrProductName      = "product.name"

	productStock = "product.stock"
)

// StockLevel is one observation for the product stock gauge.
type StockLevel struct {
	ProductID   string
	ProductName string
	Quantity    int64
}

// VendingMetrics holds the business instruments of one machine.
type VendingMetrics struct {
	meter          otelmetric.Meter
	coinsInserted  otelmetric.Int64Counter
	coinsRejected  otelmetric.Int64Counter
	sales          otelmetric.Int64Counter
	revenue        otelmetric.Float64Counter
	changeReturned otelmetric.Float64Counter
	refunded       otelmetric.Float64Counter
	resets         otelmetric.Int64Counter
}

// NewVendingMetrics creates every vending instrument on meter.
func NewVendingMetrics(meter otelmetric.Meter) (*VendingMetrics, error) {
	var err, multiErr error
	m := &VendingMetrics{meter: meter}

	m.coinsInserted, err = meter.Int64Counter("vending.coins.inserted",
		otelmetric.WithDescription("Coins accepted by the machine"),
		otelmetric.WithUnit("{coin}"))
	multiErr = errors.Join(multiErr, err)

	m.coinsRejected, err = meter.Int64Counter("vending.coins.rejected",
		otelmetric.WithDescription("Coins returned because they failed validation"),
		otelmetric.WithUnit("{coin}"))
	multiErr = errors.Join(multiErr, err)

	m.sales, err = meter.Int64Counter("vending.sales",
		otelmetric.WithDescription("Products dispensed"),
		otelmetric.WithUnit("{item}"))
	multiErr = errors.Join(multiErr, err)

	m.revenue, err = meter.Float64Counter("vending.revenue",
		otelmetric.WithDescription("Sum of prices of dispensed products"),
		otelmetric.WithUnit("{currency}"))
	multiErr = errors.Join(multiErr, err)

	m.changeReturned, err = meter.Float64Counter("vending.change.returned",
		otelmetric.WithDescription("Change paid out after purchases"),
		otelmetric.WithUnit("{currency}"))
	multiErr = errors.Join(multiErr, err)

	m.refunded, err = meter.Float64Counter("vending.refunded",
		otelmetric.WithDescription("Balance returned on refund requests"),
		otelmetric.WithUnit("{currency}"))
	multiErr = errors.Join(multiErr, err)

	m.resets, err = meter.Int64Counter("vending.resets",
		otelmetric.WithDescription("Machine resets"),
		otelmetric.WithUnit("{reset}"))
	multiErr = errors.Join(multiErr, err)

	if multiErr != nil {
		return nil, fmt.Errorf("failed to create vending instruments: %w", multiErr)
	}
	return m, nil
}

// NewNoopVendingMetrics returns instruments that record nothing.
func NewNoopVendingMetrics() *VendingMetrics {
	m, _ := NewVendingMetrics(noop.NewMeterProvider().Meter(VendingInstrumentationName))
	return m
}

func (m *VendingMetrics) IncrementCoinsInserted(ctx context.Context, denomination string) {
	m.coinsInserted.Add(ctx, 1, otelmetric.WithAttributes(attribute.String(AttrCoinDenomination, denomination)))
}

func (m *VendingMetrics) IncrementCoinsRejected(ctx context.Context, errorCode string) {
	m.coinsRejected.Add(ctx, 1, otelmetric.WithAttributes(attribute.String(AttrErrorCode, errorCode)))
}

// RecordSale counts one dispensed product together with its price and the change paid out.
func (m *VendingMetrics) RecordSale(ctx context.Context, productID, productName string, price, change float64) {
	attrs := otelmetric.WithAttributes(
		attribute.String(AttrProductID, productID),
		attribute.String(AttrProductName, productName),
	)
	m.sales.Add(ctx, 1, attrs)
	m.revenue.Add(ctx, price, attrs)
	if change > 0 {
		m.changeReturned.Add(ctx, change)
	}
}

func (m *VendingMetrics) RecordRefund(ctx context.Context, amount float64) {
	m.refunded.Add(ctx, amount)
}

func (m *VendingMetrics) IncrementResets(ctx context.Context) {
	m.resets.Add(ctx, 1)
}

// RegisterProductStockGauge exposes product.stock, reading levels from observe at collection time.
func (m *VendingMetrics) RegisterProductStockGauge(observe func(ctx context.Context) []StockLevel) (otelmetric.Registration, error) {
	stockGauge, err := m.meter.Int64ObservableGauge(
		productStock,
		otelmetric.WithDescription("Current number of products in stock"),
		otelmetric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s gauge: %w", productStock, err)
	}

	return m.meter.RegisterCallback(func(ctx context.Context, o otelmetric.Observer) error {
		for _, level := range observe(ctx) {
			o.ObserveInt64(stockGauge, level.Quantity, otelmetric.WithAttributes(
				attribute.String(AttrProductID, level.ProductID),
				attribute.String(AttrProductName, level.ProductName),
			))
		}
		return nil
	}, stockGauge)
}
