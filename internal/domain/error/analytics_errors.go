// Package error defines domain-specific errors for the merchant dashboard.
package error

import (
	"errors"
	"fmt"
)

// Analytics domain errors.
var (
	// ErrInvalidStatus is returned when a transaction status is outside the known enumeration.
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrMalformedTimestamp is returned when a transaction timestamp cannot be resolved to a calendar day.
	ErrMalformedTimestamp = errors.New("malformed transaction timestamp")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Data integrity errors (01XXXX)
	ErrCodeInvalidStatus      AnalyticsErrorCode = "ANL-010001"
	ErrCodeMalformedTimestamp AnalyticsErrorCode = "ANL-010002"
)

// AnalyticsError represents a data-integrity problem found while aggregating transactions.
type AnalyticsError struct {
	Code          AnalyticsErrorCode
	Message       string
	TransactionID string
	Value         string
	Err           error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidStatusError reports an out-of-enumeration status on a transaction.
func NewInvalidStatusError(transactionID, status string) *AnalyticsError {
	msg := fmt.Sprintf("unknown status %q", status)
	if transactionID != "" {
		msg = fmt.Sprintf("transaction %s has unknown status %q", transactionID, status)
	}
	return &AnalyticsError{
		Code:          ErrCodeInvalidStatus,
		Message:       msg,
		TransactionID: transactionID,
		Value:         status,
		Err:           ErrInvalidStatus,
	}
}

// NewMalformedTimestampError reports a created_at value that cannot be bucketed by day.
func NewMalformedTimestampError(transactionID, value string) *AnalyticsError {
	msg := fmt.Sprintf("cannot parse created_at %q", value)
	if transactionID != "" {
		msg = fmt.Sprintf("transaction %s has malformed created_at %q", transactionID, value)
	}
	return &AnalyticsError{
		Code:          ErrCodeMalformedTimestamp,
		Message:       msg,
		TransactionID: transactionID,
		Value:         value,
		Err:           ErrMalformedTimestamp,
	}
}
