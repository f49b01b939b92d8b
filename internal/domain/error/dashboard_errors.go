// Package error defines domain-specific errors for the merchant dashboard.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrSnapshotUnavailable is returned when the transaction snapshot cannot be fetched.
	ErrSnapshotUnavailable = errors.New("transaction snapshot unavailable")

	// ErrInvalidLimit is returned when a list limit is not a positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLimit        DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidStatusFilter DashboardErrorCode = "DSH-010002"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
