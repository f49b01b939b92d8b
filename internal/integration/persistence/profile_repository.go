// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
	"github.com/merchant-dashboard/backend/internal/integration/persistence/model"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the profile belonging to an identity.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// Save creates or updates a profile.
func (r *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	return r.db.WithContext(ctx).Save(model.ProfileFromEntity(profile)).Error
}

// ListDigestSubscribers returns every profile that opted into the weekly digest.
func (r *profileRepository) ListDigestSubscribers(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []model.ProfileModel
	err := r.db.WithContext(ctx).
		Where("digest_enabled = ?", true).
		Order("created_at ASC").
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, len(profileModels))
	for i := range profileModels {
		profiles[i] = profileModels[i].ToEntity()
	}
	return profiles, nil
}
