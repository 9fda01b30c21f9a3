package models

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

var acceptedDenominations = []decimal.Decimal{
	decimal.RequireFromString("0.05"),
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.20"),
	decimal.RequireFromString("0.50"),
	decimal.RequireFromString("1.00"),
	decimal.RequireFromString("2.00"),
}

// Bounds on amounts read from requests. Comparing or rounding a decimal rescales
// it, which costs time proportional to its exponent.
const (
	maxAmountLength   = 32
	maxAmountExponent = 8
)

// ErrAmountOutOfRange is returned by ParseAmount for input outside the supported bounds.
var ErrAmountOutOfRange = errors.New("amount out of supported range")

// ParseAmount parses s as a decimal whose exponent lies within ±8.
func ParseAmount(s string) (decimal.Decimal, error) {
	if len(s) > maxAmountLength {
		return decimal.Zero, ErrAmountOutOfRange
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp < -maxAmountExponent || exp > maxAmountExponent {
		return decimal.Zero, ErrAmountOutOfRange
	}
	return d, nil
}

// AcceptedDenominations returns a copy of the coin values the machine takes.
func AcceptedDenominations() []decimal.Decimal {
	return slices.Clone(acceptedDenominations)
}

// IsAcceptedDenomination reports whether d equals one of the accepted coins exactly.
func IsAcceptedDenomination(d decimal.Decimal) bool {
	return slices.ContainsFunc(acceptedDenominations, d.Equal)
}

// RoundCents rounds d to two decimal places. Every stored or compared amount goes through it.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatAmount renders d with exactly two decimals, e.g. "1.50".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatAmounts renders each amount with FormatAmount.
func FormatAmounts(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = FormatAmount(d)
	}
	return out
}
