package api

import "fmt"

// APIError represents an error returned by the board API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest returns true if the error is a 400 Bad Request error.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsConflict returns true if the error is a 409 Conflict error
// (duplicate tag name, duplicate board name).
func (e *APIError) IsConflict() bool {
	return e.StatusCode == 409
}

// IsServiceUnavailable returns true for a 503. The AI endpoints use this
// to signal that no AI provider is configured on the server.
func (e *APIError) IsServiceUnavailable() bool {
	return e.StatusCode == 503
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsAPIError checks if an error is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := err.(*APIError)
	return apiErr, ok
}
