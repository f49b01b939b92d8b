// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/application/usecase/transaction"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a transaction.
// Amount accepts a JSON number or string and is checked by the decimal_amount rule.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"decimal_amount"`
	Status      string          `json:"status" binding:"required"`
	CustomerID  string          `json:"customer_id,omitempty" binding:"omitempty,max=64"`
	Description string          `json:"description,omitempty" binding:"omitempty,max=255"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	CustomerID  *string   `json:"customer_id"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for the transaction list API.
type TransactionListResponse struct {
	Data  []TransactionResponse `json:"data"`
	Stats TransactionStatsDTO   `json:"stats"`
	Limit int                   `json:"limit"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	var customerID *string
	if tx.HasCustomer() {
		id := *tx.CustomerID
		customerID = &id
	}
	return TransactionResponse{
		ID:          tx.ID.String(),
		MerchantID:  tx.MerchantID.String(),
		CustomerID:  customerID,
		Amount:      tx.Amount.StringFixed(2),
		Status:      string(tx.Status),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.UTC(),
	}
}

// ToTransactionResponses converts a slice of transactions, never returning nil.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = ToTransactionResponse(tx)
	}
	return responses
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Data:  ToTransactionResponses(output.Transactions),
		Stats: ToTransactionStatsDTO(output.Stats),
		Limit: output.Limit,
	}
}
