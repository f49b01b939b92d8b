// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// MaxSnapshotSize bounds how many recent transactions a single listing may return.
const MaxSnapshotSize = 100

// TransactionFilter defines filter options for listing a merchant's recent transactions.
type TransactionFilter struct {
	MerchantID uuid.UUID
	Status     *entity.TransactionStatus
	Limit      int // clamped to 1..MaxSnapshotSize by implementations
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create stores a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// ListRecent returns the merchant's most recent transactions, newest first.
	ListRecent(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}
