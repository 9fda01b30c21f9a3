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

// InsertCoin validates value as one accepted coin and adds it to the balance.
func (s *vendingService) InsertCoin(ctx context.Context, value string) (balance decimal.Decimal, err error) {
	ctx, span := commontrace.StartSpan(ctx, telemetry.VendingCoinKey.String(value))
	defer commontrace.EndSpan(span, &err, refusalStatusMapper)
	mc := metric.StartMetricsTimer("service", "insert_coin")
	defer mc.End(ctx, &err)

	coin, err := parseCoin(value)
	if err != nil {
		code := err.(*VendingError).Kind.Code()
		s.logger.WarnContext(ctx, "Coin rejected", slog.String(telemetry.LogFieldCoin, value), slog.String(telemetry.LogFieldErrorCode, code))
		span.SetAttributes(telemetry.VendingErrorCodeKey.String(code))
		s.metrics.IncrementCoinsRejected(ctx, code)
		return decimal.Zero, err
	}

	err = s.repo.Transact(ctx, func(state *models.MachineState) error {
		state.Balance = models.RoundCents(state.Balance.Add(coin))
		balance = state.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.metrics.IncrementCoinsInserted(ctx, models.FormatAmount(coin))
	span.SetAttributes(telemetry.VendingBalanceKey.String(models.FormatAmount(balance)))
	s.logger.InfoContext(ctx, "Coin accepted",
		slog.String(telemetry.LogFieldCoin, models.FormatAmount(coin)),
		slog.String(telemetry.LogFieldBalance, models.FormatAmount(balance)),
	)
	return balance, nil
}

func parseCoin(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, newVendingError(MissingValue, ErrMissingValue.Message, nil)
	}

	coin, err := models.ParseAmount(trimmed)
	if err != nil {
		return decimal.Zero, newVendingError(NotANumber, ErrNotANumber.Message, NotANumberDetails{Value: value})
	}

	if !models.IsAcceptedDenomination(coin) {
		return decimal.Zero, newVendingError(InvalidDenomination, ErrInvalidDenomination.Message, InvalidDenominationDetails{
			ReturnedCoin: coin,
			Accepted:     models.AcceptedDenominations(),
		})
	}
	return coin, nil
}
