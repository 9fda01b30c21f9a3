package apierrors

// Business error codes
const (
	// Coin acceptance
	ErrCodeMissingValue        = "MISSING_VALUE"
	ErrCodeNotANumber          = "NOT_A_NUMBER"
	ErrCodeInvalidDenomination = "INVALID_COIN"

	// Product selection and settlement
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOutOfStock        = "OUT_OF_STOCK"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"

	// Refunds
	ErrCodeInvalidRefundAmount = "INVALID_REFUND_AMOUNT"
	ErrCodeRefundTooHigh       = "REFUND_TOO_HIGH"
)
