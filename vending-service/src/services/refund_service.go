package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/narender/vending-machine/common/telemetry"
	"github.com/narender/vending-machine/common/telemetry/metric"
	commontrace "github.com/narender/vending-machine/common/telemetry/trace"
	"github.com/narender/vending-machine/vending-service/src/models"
)

// RefundAmount returns part of the balance. amount must be a whole number of cents.
func (s *vendingService) RefundAmount(ctx context.Context, amount string) (result models.RefundResult, err error) {
	ctx, span := commontrace.StartSpan(ctx, telemetry.VendingRefundAmountKey.String(amount))
	defer commontrace.EndSpan(span, &err, refusalStatusMapper)
	mc := metric.StartMetricsTimer("service", "refund_amount")
	defer mc.End(ctx, &err)

	requested, err := parseRefundAmount(amount)
	if err != nil {
		s.logger.WarnContext(ctx, "Refund refused", slog.String(telemetry.LogFieldAmount, amount), slog.String("reason", err.Error()))
		return models.RefundResult{}, err
	}

	err = s.repo.Transact(ctx, func(state *models.MachineState) error {
		balance := models.RoundCents(state.Balance)
		if requested.GreaterThan(balance) {
			return newVendingError(RefundTooHigh, ErrRefundTooHigh.Message, RefundTooHighDetails{
				RequestedAmount: requested,
				CurrentBalance:  balance,
			})
		}
		state.Balance = models.RoundCents(balance.Sub(requested))
		result = models.RefundResult{ReturnedAmount: models.RoundCents(requested), RemainingBalance: state.Balance}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Refund refused", slog.String(telemetry.LogFieldAmount, amount), slog.String("reason", err.Error()))
		return models.RefundResult{}, err
	}

	s.recordRefund(ctx, result)
	return result, nil
}

// RefundAll returns the whole balance. An empty balance is an invalid refund.
func (s *vendingService) RefundAll(ctx context.Context) (result models.RefundResult, err error) {
	ctx, span := commontrace.StartSpan(ctx)
	defer commontrace.EndSpan(span, &err, refusalStatusMapper)
	mc := metric.StartMetricsTimer("service", "refund_all")
	defer mc.End(ctx, &err)

	err = s.repo.Transact(ctx, func(state *models.MachineState) error {
		balance := models.RoundCents(state.Balance)
		if !balance.IsPositive() {
			return newVendingError(InvalidRefundAmount, "No balance to refund.", InvalidRefundAmountDetails{
				RequestedAmount: models.FormatAmount(balance),
			})
		}
		state.Balance = decimal.Zero
		result = models.RefundResult{ReturnedAmount: balance, RemainingBalance: decimal.Zero}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Refund refused", slog.String("reason", err.Error()))
		return models.RefundResult{}, err
	}

	span.SetAttributes(telemetry.VendingRefundAmountKey.String(models.FormatAmount(result.ReturnedAmount)))
	s.recordRefund(ctx, result)
	return result, nil
}

func (s *vendingService) recordRefund(ctx context.Context, result models.RefundResult) {
	returned, _ := result.ReturnedAmount.Float64()
	s.metrics.RecordRefund(ctx, returned)
	s.logger.InfoContext(ctx, "Refund processed",
		slog.String(telemetry.LogFieldAmount, models.FormatAmount(result.ReturnedAmount)),
		slog.String(telemetry.LogFieldBalance, models.FormatAmount(result.RemainingBalance)),
	)
}

// parseRefundAmount accepts positive amounts in whole cents only, so the
// amount returned is always the amount asked for.
func parseRefundAmount(amount string) (decimal.Decimal, error) {
	requested, err := models.ParseAmount(strings.TrimSpace(amount))
	if err != nil || !requested.IsPositive() || !requested.Equal(models.RoundCents(requested)) {
		return decimal.Zero, newVendingError(InvalidRefundAmount, ErrInvalidRefundAmount.Message, InvalidRefundAmountDetails{RequestedAmount: amount})
	}
	return requested, nil
}
