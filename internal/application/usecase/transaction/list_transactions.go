// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// DefaultListLimit is used when the caller does not ask for a specific number of rows.
const DefaultListLimit = 20

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	MerchantID uuid.UUID
	Status     string // optional, one of the known statuses
	Limit      int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Stats        dashboard.TransactionStats
	Limit        int
}

// ListTransactionsUseCase handles listing a merchant's recent transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = DefaultListLimit
	}
	if limit > adapter.MaxSnapshotSize {
		limit = adapter.MaxSnapshotSize
	}

	filter := adapter.TransactionFilter{
		MerchantID: input.MerchantID,
		Limit:      limit,
	}

	if input.Status != "" {
		status, err := entity.ParseTransactionStatus(input.Status)
		if err != nil {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidStatusFilter,
				fmt.Sprintf("status must be one of %v", entity.TransactionStatuses),
				err,
			)
		}
		filter.Status = &status
	}

	transactions, err := uc.transactionRepo.ListRecent(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	stats, err := dashboard.ComputeStats(transactions)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Stats:        stats,
		Limit:        limit,
	}, nil
}
