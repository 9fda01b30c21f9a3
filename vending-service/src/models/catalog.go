package models

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/narender/vending-machine/common/validator"
)

// Catalog is the immutable product template a machine starts from and resets to.
type Catalog struct {
	products []Product
}

// NewCatalog validates products and stores a private copy with prices rounded to cents.
func NewCatalog(products []Product) (*Catalog, error) {
	var errs error
	seen := make(map[string]struct{}, len(products))
	owned := make([]Product, 0, len(products))

	for i, p := range products {
		if appErr := validator.ValidateStruct(p); appErr != nil {
			errs = errors.Join(errs, fmt.Errorf("product %d (%q): %w", i, p.ID, appErr))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			errs = errors.Join(errs, fmt.Errorf("product %d: duplicate id %q", i, p.ID))
			continue
		}
		seen[p.ID] = struct{}{}
		p.Price = RoundCents(p.Price)
		owned = append(owned, p)
	}

	if errs != nil {
		return nil, fmt.Errorf("invalid catalog: %w", errs)
	}
	return &Catalog{products: owned}, nil
}

// DefaultCatalog is the stock loaded when no catalog file is available.
func DefaultCatalog() *Catalog {
	return &Catalog{products: []Product{
		{ID: "P1", Name: "Coke", Price: decimal.RequireFromString("1.50"), Quantity: 8},
		{ID: "P2", Name: "Pepsi", Price: decimal.RequireFromString("1.45"), Quantity: 6},
		{ID: "P3", Name: "Water", Price: decimal.RequireFromString("0.90"), Quantity: 10},
	}}
}

// Products returns a copy of the template products in catalog order.
func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// NewState builds a fresh machine state: full stock and zero balance.
func (c *Catalog) NewState() *MachineState {
	return &MachineState{
		Products: c.Products(),
		Balance:  decimal.Zero,
	}
}
