package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/vending-machine/common/telemetry/metric"
	"github.com/narender/vending-machine/vending-service/src/models"
)

// RefundAmount handles POST /return-coins/:amount.
func (h *VendingHandler) RefundAmount(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()
	mc := metric.StartMetricsTimer("handler", "refund_amount")
	defer mc.End(ctx, &err)

	result, err := h.service.RefundAmount(ctx, c.Params("amount"))
	if err != nil {
		return toAppError(err)
	}
	return c.Status(http.StatusOK).JSON(toRefundResponse(result))
}

// RefundAll handles POST /return-coins.
func (h *VendingHandler) RefundAll(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()
	mc := metric.StartMetricsTimer("handler", "refund_all")
	defer mc.End(ctx, &err)

	result, err := h.service.RefundAll(ctx)
	if err != nil {
		return toAppError(err)
	}
	return c.Status(http.StatusOK).JSON(toRefundResponse(result))
}

func toRefundResponse(result models.RefundResult) RefundResponse {
	returned := models.FormatAmount(result.ReturnedAmount)
	return RefundResponse{
		Message:          fmt.Sprintf("Refund processed. %s returned.", returned),
		ReturnedAmount:   returned,
		RemainingBalance: models.FormatAmount(result.RemainingBalance),
	}
}
