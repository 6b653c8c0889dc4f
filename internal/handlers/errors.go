package handlers

// ErrorResponse is the JSON error body every handler renders on failure.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}
