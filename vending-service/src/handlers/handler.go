package handlers

import (
	"log/slog"

	"github.com/narender/vending-machine/vending-service/src/services"
)

type VendingHandler struct {
	service services.VendingService
	logger  *slog.Logger
}

func NewVendingHandler(svc services.VendingService, logger *slog.Logger) *VendingHandler {
	return &VendingHandler{
		service: svc,
		logger:  logger,
	}
}
