// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Status is stored verbatim so rows written by other systems keep their original value.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_merchant_created,priority:1"`
	CustomerID  *string         `gorm:"type:varchar(64);index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_transactions_merchant_created,priority:2,sort:desc"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		CustomerID:  m.CustomerID,
		Amount:      m.Amount,
		Status:      entity.TransactionStatus(m.Status),
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          t.ID,
		MerchantID:  t.MerchantID,
		CustomerID:  t.CustomerID,
		Amount:      t.Amount,
		Status:      string(t.Status),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
