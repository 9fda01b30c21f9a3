package services

import (
	"errors"

	"github.com/shopspring/decimal"

	apierrors "github.com/narender/vending-machine/common/apierrors"
)

// ErrorKind classifies every way a machine operation can be refused.
type ErrorKind int

const (
	MissingValue ErrorKind = iota + 1
	NotANumber
	InvalidDenomination
	ProductNotFound
	OutOfStock
	InsufficientFunds
	InvalidRefundAmount
	RefundTooHigh
)

// Code returns the wire code for the kind.
func (k ErrorKind) Code() string {
	switch k {
	case MissingValue:
		return apierrors.ErrCodeMissingValue
	case NotANumber:
		return apierrors.ErrCodeNotANumber
	case InvalidDenomination:
		return apierrors.ErrCodeInvalidDenomination
	case ProductNotFound:
		return apierrors.ErrCodeProductNotFound
	case OutOfStock:
		return apierrors.ErrCodeOutOfStock
	case InsufficientFunds:
		return apierrors.ErrCodeInsufficientFunds
	case InvalidRefundAmount:
		return apierrors.ErrCodeInvalidRefundAmount
	case RefundTooHigh:
		return apierrors.ErrCodeRefundTooHigh
	default:
		return apierrors.ErrCodeUnknown
	}
}

func (k ErrorKind) String() string {
	return k.Code()
}

// VendingError is returned by every refused operation. Details holds the
// kind's details struct, or nil for kinds without one.
type VendingError struct {
	Kind    ErrorKind
	Message string
	Details any
}

func (e *VendingError) Error() string {
	return e.Message
}

// Is matches any VendingError of the same kind, so the sentinels below work with errors.Is.
func (e *VendingError) Is(target error) bool {
	var t *VendingError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingValue        = &VendingError{Kind: MissingValue, Message: "Coin value missing."}
	ErrNotANumber          = &VendingError{Kind: NotANumber, Message: "Invalid coin value. Must be a number."}
	ErrInvalidDenomination = &VendingError{Kind: InvalidDenomination, Message: "Invalid coin denomination."}
	ErrProductNotFound     = &VendingError{Kind: ProductNotFound, Message: "Product not found."}
	ErrOutOfStock          = &VendingError{Kind: OutOfStock, Message: "Product is out of stock."}
	ErrInsufficientFunds   = &VendingError{Kind: InsufficientFunds, Message: "Insufficient balance."}
	ErrInvalidRefundAmount = &VendingError{Kind: InvalidRefundAmount, Message: "Invalid refund amount requested."}
	ErrRefundTooHigh       = &VendingError{Kind: RefundTooHigh, Message: "Requested refund amount exceeds current balance."}
)

// NotANumberDetails carries the value that failed to parse.
type NotANumberDetails struct {
	Value string
}

// InvalidDenominationDetails carries the rejected coin and the accepted set.
type InvalidDenominationDetails struct {
	ReturnedCoin decimal.Decimal
	Accepted     []decimal.Decimal
}

type ProductNotFoundDetails struct {
	ProductID string
}

type OutOfStockDetails struct {
	ProductID   string
	ProductName string
}

// InsufficientFundsDetails amounts are rounded to cents.
type InsufficientFundsDetails struct {
	ProductName    string
	CurrentBalance decimal.Decimal
	ProductPrice   decimal.Decimal
	AmountNeeded   decimal.Decimal
}

// InvalidRefundAmountDetails keeps the request as given since it may not parse.
type InvalidRefundAmountDetails struct {
	RequestedAmount string
}

type RefundTooHighDetails struct {
	RequestedAmount decimal.Decimal
	CurrentBalance  decimal.Decimal
}

func newVendingError(kind ErrorKind, message string, details any) *VendingError {
	return &VendingError{Kind: kind, Message: message, Details: details}
}
