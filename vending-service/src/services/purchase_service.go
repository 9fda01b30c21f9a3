package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/narender/vending-machine/common/telemetry"
	"github.com/narender/vending-machine/common/telemetry/metric"
	commontrace "github.com/narender/vending-machine/common/telemetry/trace"
	"github.com/narender/vending-machine/vending-service/src/models"
)

// PurchaseProduct sells one unit of productID, paying out the whole remaining balance as change.
func (s *vendingService) PurchaseProduct(ctx context.Context, productID string) (result models.PurchaseResult, err error) {
	ctx, span := commontrace.StartSpan(ctx, telemetry.AppProductIDKey.String(productID))
	defer commontrace.EndSpan(span, &err, refusalStatusMapper)
	mc := metric.StartMetricsTimer("service", "purchase_product")
	defer mc.End(ctx, &err)

	s.logger.DebugContext(ctx, "Processing purchase request", slog.String(telemetry.LogFieldProductID, productID))

	var remaining int
	err = s.repo.Transact(ctx, func(state *models.MachineState) error {
		product, ok := state.FindProduct(productID)
		if !ok {
			return newVendingError(ProductNotFound,
				fmt.Sprintf("Product ID '%s' not found.", productID),
				ProductNotFoundDetails{ProductID: productID})
		}

		if product.Quantity <= 0 {
			return newVendingError(OutOfStock,
				fmt.Sprintf("Product '%s' is out of stock.", product.Name),
				OutOfStockDetails{ProductID: product.ID, ProductName: product.Name})
		}

		balance := models.RoundCents(state.Balance)
		price := models.RoundCents(product.Price)
		if balance.LessThan(price) {
			return newVendingError(InsufficientFunds,
				fmt.Sprintf("Insufficient balance for '%s'.", product.Name),
				InsufficientFundsDetails{
					ProductName:    product.Name,
					CurrentBalance: balance,
					ProductPrice:   price,
					AmountNeeded:   models.RoundCents(price.Sub(balance)),
				})
		}

		product.Quantity--
		state.Balance = decimal.Zero
		remaining = product.Quantity
		result = models.PurchaseResult{
			Product: product.View(),
			Change:  models.RoundCents(balance.Sub(price)),
		}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Purchase refused", slog.String(telemetry.LogFieldProductID, productID), slog.String("reason", err.Error()))
		return models.PurchaseResult{}, err
	}

	price, _ := result.Product.Price.Float64()
	change, _ := result.Change.Float64()
	s.metrics.RecordSale(ctx, result.Product.ID, result.Product.Name, price, change)

	span.SetAttributes(
		telemetry.AppProductNameKey.String(result.Product.Name),
		telemetry.AppProductStockKey.Int(remaining),
		telemetry.VendingChangeKey.String(models.FormatAmount(result.Change)),
	)
	s.logger.InfoContext(ctx, "Product dispensed",
		slog.String(telemetry.LogFieldProductID, result.Product.ID),
		slog.String(telemetry.LogFieldChange, models.FormatAmount(result.Change)),
		slog.Int("remaining_stock", remaining),
	)
	return result, nil
}
