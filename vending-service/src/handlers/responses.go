package handlers

import (
	"github.com/narender/vending-machine/vending-service/src/models"
)

type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type BalanceResponse struct {
	CurrentBalance string `json:"currentBalance"`
}

type CoinsResponse struct {
	Accepted []string `json:"accepted"`
}

type InsertCoinResponse struct {
	Message        string `json:"message"`
	CurrentBalance string `json:"currentBalance"`
}

type PurchaseResponse struct {
	Message        string          `json:"message"`
	Product        ProductResponse `json:"product"`
	ChangeReturned string          `json:"changeReturned"`
}

type RefundResponse struct {
	Message          string `json:"message"`
	ReturnedAmount   string `json:"returnedAmount"`
	RemainingBalance string `json:"remainingBalance"`
}

func toProductResponse(p models.ProductView) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: models.FormatAmount(p.Price),
	}
}
