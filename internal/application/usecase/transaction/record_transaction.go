// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxCustomerIDLength is the maximum allowed length for customer references.
	MaxCustomerIDLength = 64
)

// RecordTransactionInput represents a transaction reported by the payment processor.
type RecordTransactionInput struct {
	MerchantID  uuid.UUID
	CustomerID  string
	Amount      decimal.Decimal
	Status      string
	Description string
	CreatedAt   string // optional; defaults to the clock's current time
}

// RecordTransactionOutput represents the output of recording a transaction.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase handles recording transactions.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute validates and stores the transaction.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	status, err := entity.ParseTransactionStatus(strings.ToLower(strings.TrimSpace(input.Status)))
	if err != nil {
		return nil, err
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	customerID := strings.TrimSpace(input.CustomerID)
	if len(customerID) > MaxCustomerIDLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCustomerIDTooLong,
			fmt.Sprintf("customer_id must not exceed %d characters", MaxCustomerIDLength),
			domainerror.ErrCustomerIDTooLong,
		)
	}

	var createdAt time.Time
	if input.CreatedAt == "" {
		createdAt = uc.clock.Now()
	} else {
		createdAt, err = entity.ParseTimestamp(input.CreatedAt)
		if err != nil {
			return nil, err
		}
	}

	var customer *string
	if customerID != "" {
		customer = &customerID
	}

	transaction := entity.NewTransaction(
		input.MerchantID,
		customer,
		input.Amount,
		status,
		input.Description,
		createdAt.UTC(),
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Debug("Recorded transaction",
		"transactionID", transaction.ID,
		"merchantID", transaction.MerchantID,
		"status", transaction.Status,
	)

	return &RecordTransactionOutput{Transaction: transaction}, nil
}
