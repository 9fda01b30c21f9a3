package apiresponses

// Field names shared by every error body.
const (
	FieldError = "error"
	FieldCode  = "code"
)

// ErrorResponse is the flat error body: {"error": message, "code": code, ...details}.
type ErrorResponse map[string]any

// NewErrorResponse builds an error body, merging details at the top level.
// details never override the message or code fields.
func NewErrorResponse(code, message string, details map[string]any) ErrorResponse {
	resp := make(ErrorResponse, len(details)+2)
	for k, v := range details {
		resp[k] = v
	}
	resp[FieldError] = message
	resp[FieldCode] = code
	return resp
}

// ActionConfirmation is returned by operations that only report success.
type ActionConfirmation struct {
	Message string `json:"message"`
}

// HealthStatus is returned by the liveness endpoints.
type HealthStatus struct {
	Status string `json:"status"`
}
