// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
	"github.com/merchant-dashboard/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// ListRecent returns the merchant's newest transactions. The limit is clamped to
// 1..MaxSnapshotSize so a single request never reads unbounded history.
func (r *transactionRepository) ListRecent(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	limit := filter.Limit
	if limit < 1 || limit > adapter.MaxSnapshotSize {
		limit = adapter.MaxSnapshotSize
	}

	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("merchant_id = ?", filter.MerchantID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var transactionModels []model.TransactionModel
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&transactionModels).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}
