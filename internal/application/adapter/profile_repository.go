// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for merchant profile persistence operations.
type ProfileRepository interface {
	// FindByUserID retrieves the profile of an identity. Returns ErrProfileNotFound when absent.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Save creates or updates a profile.
	Save(ctx context.Context, profile *entity.Profile) error

	// ListDigestSubscribers returns every profile with the weekly digest enabled.
	ListDigestSubscribers(ctx context.Context) ([]*entity.Profile, error)
}
