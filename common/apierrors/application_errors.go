package apierrors

// Application error codes
const (
	// System Errors
	ErrCodeDataAccess         = "DATA_ACCESS_ERROR"         // Catalog file read failures
	ErrCodeRequestValidation  = "REQUEST_VALIDATION_ERROR"  // Input validation failures
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR" // Logic execution failures

	// Unexpected Errors
	ErrCodeSystemPanic    = "SYSTEM_PANIC"    // Recovered panics
	ErrCodeMalformedData  = "MALFORMED_DATA"  // Invalid data formats (JSON parse errors, etc.)
	ErrCodeRequestTimeout = "REQUEST_TIMEOUT" // Operation timeouts
	ErrCodeRouteNotFound  = "ROUTE_NOT_FOUND" // No handler for method and path
	ErrCodeUnknown        = "UNKNOWN_ERROR"   // Fallback for unclassified errors
)
