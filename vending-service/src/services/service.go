package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/codes"

	"github.com/narender/vending-machine/common/telemetry/metric"
	"github.com/narender/vending-machine/vending-service/src/models"
	"github.com/narender/vending-machine/vending-service/src/repositories"
)

// ResetMessage confirms a completed reset.
const ResetMessage = "Vending machine has been reset to initial state."

// VendingService applies customer and operator actions to one machine.
// Refusals are returned as *VendingError.
type VendingService interface {
	ListProducts(ctx context.Context) []models.ProductView
	GetBalance(ctx context.Context) decimal.Decimal
	AcceptedCoins() []decimal.Decimal
	InsertCoin(ctx context.Context, value string) (decimal.Decimal, error)
	PurchaseProduct(ctx context.Context, productID string) (models.PurchaseResult, error)
	RefundAmount(ctx context.Context, amount string) (models.RefundResult, error)
	RefundAll(ctx context.Context) (models.RefundResult, error)
	Reset(ctx context.Context) string
	StockLevels(ctx context.Context) []metric.StockLevel
}

type vendingService struct {
	repo    repositories.MachineRepository
	metrics *metric.VendingMetrics
	logger  *slog.Logger
}

func NewVendingService(repo repositories.MachineRepository, metrics *metric.VendingMetrics, logger *slog.Logger) VendingService {
	if metrics == nil {
		metrics = metric.NewNoopVendingMetrics()
	}
	return &vendingService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// refusalStatusMapper leaves the span status unset for refusals; they are not faults.
func refusalStatusMapper(err error) codes.Code {
	var vErr *VendingError
	if errors.As(err, &vErr) {
		return codes.Unset
	}
	return codes.Error
}

func (s *vendingService) ListProducts(ctx context.Context) []models.ProductView {
	return s.repo.ListAvailable(ctx)
}

func (s *vendingService) GetBalance(ctx context.Context) decimal.Decimal {
	return s.repo.Balance(ctx)
}

func (s *vendingService) AcceptedCoins() []decimal.Decimal {
	return models.AcceptedDenominations()
}

// StockLevels reports the quantity of every product, sold out ones included.
func (s *vendingService) StockLevels(ctx context.Context) []metric.StockLevel {
	snapshot := s.repo.Snapshot(ctx)
	levels := make([]metric.StockLevel, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		levels = append(levels, metric.StockLevel{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    int64(p.Quantity),
		})
	}
	return levels
}
