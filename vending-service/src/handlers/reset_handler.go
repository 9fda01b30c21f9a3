package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apiresponses "github.com/narender/vending-machine/common/apiresponses"
)

func (h *VendingHandler) Reset(c *fiber.Ctx) error {
	ctx := c.UserContext()
	message := h.service.Reset(ctx)
	h.logger.InfoContext(ctx, "Reset requested by operator", slog.String("ip", c.IP()))
	return c.Status(http.StatusOK).JSON(apiresponses.ActionConfirmation{Message: message})
}
