package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/vending-machine/common/telemetry"
)

// GetProducts lists the products that are in stock.
func (h *VendingHandler) GetProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	products := h.service.ListProducts(ctx)

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	h.logger.DebugContext(ctx, "Returning available products", slog.Int(telemetry.LogFieldCount, len(response)))
	return c.Status(http.StatusOK).JSON(response)
}
