package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "HANDLE_TAKEN"
	Details string `json:"details"` // Detailed error information (optional)
}

// Response is the unified envelope the error middleware writes for failed
// requests. It mirrors the delivery layer's response shape so clients see a
// single format regardless of which layer produced the failure.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
