package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/vending-machine/common/telemetry/metric"
	"github.com/narender/vending-machine/vending-service/src/models"
)

func (h *VendingHandler) PurchaseProduct(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()
	mc := metric.StartMetricsTimer("handler", "purchase_product")
	defer mc.End(ctx, &err)

	result, err := h.service.PurchaseProduct(ctx, c.Params("productId"))
	if err != nil {
		return toAppError(err)
	}

	return c.Status(http.StatusOK).JSON(PurchaseResponse{
		Message:        fmt.Sprintf("Purchase successful! Dispensing %s.", result.Product.Name),
		Product:        toProductResponse(result.Product),
		ChangeReturned: models.FormatAmount(result.Change),
	})
}
