package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apirequests "github.com/narender/vending-machine/common/apirequests"
	"github.com/narender/vending-machine/common/middleware"
	"github.com/narender/vending-machine/common/telemetry"
	"github.com/narender/vending-machine/common/telemetry/metric"
	"github.com/narender/vending-machine/vending-service/src/models"
)

// InsertCoin accepts {"coin": 0.5} or {"coin": "0.50"}.
func (h *VendingHandler) InsertCoin(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()
	mc := metric.StartMetricsTimer("handler", "insert_coin")
	defer mc.End(ctx, &err)
	logger := middleware.RequestLogger(c, h.logger)

	var req apirequests.InsertCoinRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		logger.WarnContext(ctx, "Invalid insert-coin request body", slog.String("error", parseErr.Error()))
		return parseErr
	}

	balance, err := h.service.InsertCoin(ctx, req.CoinValue())
	if err != nil {
		return toAppError(err)
	}

	logger.DebugContext(ctx, "Coin accepted", slog.String(telemetry.LogFieldBalance, models.FormatAmount(balance)))
	return c.Status(http.StatusOK).JSON(InsertCoinResponse{
		Message:        "Coin accepted.",
		CurrentBalance: models.FormatAmount(balance),
	})
}
