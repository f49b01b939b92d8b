// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// TransactionStatus represents the lifecycle state of a payment transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// TransactionStatuses lists every known status in display order.
var TransactionStatuses = []TransactionStatus{
	TransactionStatusCompleted,
	TransactionStatusPending,
	TransactionStatusFailed,
	TransactionStatusCancelled,
}

// IsValid reports whether the status belongs to the closed enumeration.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusCompleted,
		TransactionStatusPending,
		TransactionStatusFailed,
		TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseTransactionStatus converts a raw value into a TransactionStatus.
// Unknown values are rejected, never coerced into one of the known buckets.
func ParseTransactionStatus(value string) (TransactionStatus, error) {
	status := TransactionStatus(value)
	if !status.IsValid() {
		return "", domainerror.NewInvalidStatusError("", value)
	}
	return status, nil
}

// timestampLayouts are the accepted created_at formats, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a created_at value reported by the payment collaborator.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, domainerror.NewMalformedTimestampError("", value)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, domainerror.NewMalformedTimestampError("", value)
}

// Transaction represents a payment processed on behalf of a merchant.
type Transaction struct {
	ID          uuid.UUID
	MerchantID  uuid.UUID
	CustomerID  *string // nil or empty for guest checkouts
	Amount      decimal.Decimal
	Status      TransactionStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	merchantID uuid.UUID,
	customerID *string,
	amount decimal.Decimal,
	status TransactionStatus,
	description string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		MerchantID:  merchantID,
		CustomerID:  customerID,
		Amount:      amount,
		Status:      status,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// HasCustomer reports whether the transaction is attributed to a known customer.
func (t *Transaction) HasCustomer() bool {
	return t.CustomerID != nil && *t.CustomerID != ""
}

// IsCompleted reports whether the transaction settled.
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}
