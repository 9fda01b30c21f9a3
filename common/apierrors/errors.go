package apierrors

import "fmt"

// AppError defines a standard application error.
type AppError struct {
	Code     string         // Application-specific error code
	Message  string         // User-friendly error message
	Category ErrorCategory  // Business or application failure
	Details  map[string]any // Structured fields merged into the error response
	Err      error          // Original underlying error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail attaches a structured field to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewBusinessError creates an error for a business rule violation.
func NewBusinessError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryBusiness,
		Err:      cause,
	}
}

// NewApplicationError creates an error for a technical or infrastructure failure.
func NewApplicationError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryApplication,
		Err:      cause,
	}
}
