// Package error defines domain-specific errors for the merchant dashboard.
package error

import "errors"

// Profile domain errors.
var (
	// ErrDisplayNameTooLong is returned when the display name exceeds the maximum length.
	ErrDisplayNameTooLong = errors.New("display name too long")

	// ErrTooManyDigestRecipients is returned when more extra digest addresses are given than allowed.
	ErrTooManyDigestRecipients = errors.New("too many digest recipients")

	// ErrInvalidDigestRecipient is returned when a digest address is not an e-mail address.
	ErrInvalidDigestRecipient = errors.New("invalid digest recipient")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDisplayNameTooLong      ProfileErrorCode = "PRF-010001"
	ErrCodeTooManyDigestRecipients ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidDigestRecipient  ProfileErrorCode = "PRF-010003"
	ErrCodeInvalidProfileRequest   ProfileErrorCode = "PRF-010004"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
