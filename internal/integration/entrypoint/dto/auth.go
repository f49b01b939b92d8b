// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ProvidersResponse lists the third-party sign-in providers the login page should offer.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
