package common

// ErrorResponse represents a standard error response.
// Details carries multi-line guidance for the user when available.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
