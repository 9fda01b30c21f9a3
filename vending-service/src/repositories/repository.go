package repositories

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/narender/vending-machine/vending-service/src/models"
)

// MachineRepository owns the live state of one machine. It enforces no business rules.
type MachineRepository interface {
	ListAvailable(ctx context.Context) []models.ProductView
	Balance(ctx context.Context) decimal.Decimal
	Snapshot(ctx context.Context) *models.MachineState
	Transact(ctx context.Context, fn func(state *models.MachineState) error) error
	Reset(ctx context.Context)
}

type machineRepository struct {
	mu      sync.RWMutex
	catalog *models.Catalog
	state   *models.MachineState
	logger  *slog.Logger
}

// NewMachineRepository creates a store holding a fresh state built from catalog.
func NewMachineRepository(catalog *models.Catalog, logger *slog.Logger) MachineRepository {
	return &machineRepository{
		catalog: catalog,
		state:   catalog.NewState(),
		logger:  logger,
	}
}
