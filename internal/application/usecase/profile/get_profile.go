// Package profile contains use cases for the merchant's dashboard profile.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	UserID uuid.UUID
	Email  string
}

// GetProfileOutput represents the merchant's profile as shown to them.
type GetProfileOutput struct {
	Profile            *entity.Profile
	ResolvedName       string
	Persisted          bool
	DigestAddressCount int
}

// GetProfileUseCase reads the merchant's profile, falling back to identity defaults.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute returns the stored profile or an unsaved default built from the identity.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	persisted := true
	p, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to get profile: %w", err)
		}
		p = entity.NewProfile(input.UserID, input.Email, "")
		persisted = false
	}

	return &GetProfileOutput{
		Profile:            p,
		ResolvedName:       entity.ResolveDisplayName(p, input.Email),
		Persisted:          persisted,
		DigestAddressCount: len(p.DigestAddresses()),
	}, nil
}
