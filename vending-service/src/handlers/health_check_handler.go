package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apiresponses "github.com/narender/vending-machine/common/apiresponses"
)

func (h *VendingHandler) HealthCheck(c *fiber.Ctx) error {
	h.logger.DebugContext(c.UserContext(), "Health check requested", slog.String("path", c.Path()))
	return c.Status(http.StatusOK).JSON(apiresponses.HealthStatus{Status: "ok"})
}
