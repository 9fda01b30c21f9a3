package services

import (
	"context"

	"github.com/narender/vending-machine/common/telemetry/metric"
	commontrace "github.com/narender/vending-machine/common/telemetry/trace"
)

// Reset zeroes the balance and restores every product from the catalog. It cannot fail.
func (s *vendingService) Reset(ctx context.Context) string {
	ctx, span := commontrace.StartSpan(ctx)
	var err error
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("service", "reset")
	defer mc.End(ctx, &err)

	s.repo.Reset(ctx)
	s.metrics.IncrementResets(ctx)

	s.logger.InfoContext(ctx, "Vending machine reset")
	return ResetMessage
}
