package repositories

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/narender/vending-machine/common/telemetry"
	"github.com/narender/vending-machine/vending-service/src/models"
)

func (r *machineRepository) ListAvailable(ctx context.Context) []models.ProductView {
	r.mu.RLock()
	views := r.state.Available()
	r.mu.RUnlock()

	r.logger.DebugContext(ctx, "Listed available products", slog.Int(telemetry.LogFieldCount, len(views)))
	return views
}

func (r *machineRepository) Balance(ctx context.Context) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.RoundCents(r.state.Balance)
}

// Snapshot returns a deep copy of the live state.
func (r *machineRepository) Snapshot(ctx context.Context) *models.MachineState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}
