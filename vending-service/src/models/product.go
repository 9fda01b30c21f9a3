package models

import "github.com/shopspring/decimal"

// Product is one slot of the machine. Quantity never goes below zero.
type Product struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity int             `json:"quantity" validate:"gte=0"`
}

// ProductView is what customers see of a product.
type ProductView struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// View projects p to its customer-facing fields with the price rounded to cents.
func (p Product) View() ProductView {
	return ProductView{
		ID:    p.ID,
		Name:  p.Name,
		Price: RoundCents(p.Price),
	}
}

// PurchaseResult describes a completed sale.
type PurchaseResult struct {
	Product ProductView
	Change  decimal.Decimal
}

// RefundResult describes a completed refund.
type RefundResult struct {
	ReturnedAmount   decimal.Decimal
	RemainingBalance decimal.Decimal
}
