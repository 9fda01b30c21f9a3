package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

// MachineState is the live record of one machine.
type MachineState struct {
	Products []Product
	Balance  decimal.Decimal
}

// Clone returns a deep copy of s.
func (s *MachineState) Clone() *MachineState {
	return &MachineState{
		Products: slices.Clone(s.Products),
		Balance:  s.Balance,
	}
}

// FindProduct returns a pointer into s.Products for id.
func (s *MachineState) FindProduct(id string) (*Product, bool) {
	i := slices.IndexFunc(s.Products, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return nil, false
	}
	return &s.Products[i], true
}

// Available returns views of the products with stock left, in catalog order.
func (s *MachineState) Available() []ProductView {
	views := make([]ProductView, 0, len(s.Products))
	for _, p := range s.Products {
		if p.Quantity > 0 {
			views = append(views, p.View())
		}
	}
	return views
}
