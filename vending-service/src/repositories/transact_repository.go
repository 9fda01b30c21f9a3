package repositories

import (
	"context"
	"log/slog"

	"github.com/narender/vending-machine/common/telemetry/metric"
	"github.com/narender/vending-machine/vending-service/src/models"
)

// Transact runs fn against a copy of the live state under the write lock.
// The copy replaces the live state only when fn returns nil, so a failed
// operation leaves no partial mutation behind.
func (r *machineRepository) Transact(ctx context.Context, fn func(state *models.MachineState) error) (err error) {
	mc := metric.StartMetricsTimer("repository", "transact")
	defer mc.End(ctx, &err)

	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.state.Clone()
	if err = fn(working); err != nil {
		r.logger.DebugContext(ctx, "Transaction rolled back", slog.Any("error", err))
		return err
	}

	r.state = working
	return nil
}

// Reset replaces the live state with a fresh one from the catalog.
func (r *machineRepository) Reset(ctx context.Context) {
	fresh := r.catalog.NewState()

	r.mu.Lock()
	r.state = fresh
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Machine state restored from catalog", slog.Int("products", len(fresh.Products)))
}
