// Package error defines domain-specific errors for the merchant dashboard.
package error

import "errors"

// Digest delivery errors.
var (
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrUnknownDigestTemplate is returned when a queued job names a template the worker cannot render.
	ErrUnknownDigestTemplate = errors.New("unknown digest template")
)

// EmailErrorCode defines error codes for digest delivery.
// Format: EMAIL-XXYYYY where XX is the stage (queue, delivery, render).
type EmailErrorCode string

const (
	// Queue (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	// Delivery (02XXXX). Rejected jobs are never retried.
	ErrCodeDeliveryRejected  EmailErrorCode = "EMAIL-020001"
	ErrCodeDeliveryRetryable EmailErrorCode = "EMAIL-020002"

	// Render (03XXXX)
	ErrCodeDigestRenderFailed EmailErrorCode = "EMAIL-030001"
)

// EmailError represents a digest delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsDeliveryRejected reports whether err carries ErrCodeDeliveryRejected.
func IsDeliveryRejected(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) && emailErr.Code == ErrCodeDeliveryRejected
}
