package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/vending-machine/vending-service/src/models"
)

func (h *VendingHandler) GetBalance(c *fiber.Ctx) error {
	balance := h.service.GetBalance(c.UserContext())
	return c.Status(http.StatusOK).JSON(BalanceResponse{CurrentBalance: models.FormatAmount(balance)})
}

func (h *VendingHandler) GetAcceptedCoins(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(CoinsResponse{Accepted: models.FormatAmounts(h.service.AcceptedCoins())})
}
