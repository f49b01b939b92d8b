package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

const (
	// MaxDisplayNameLength is the maximum allowed length for display names.
	MaxDisplayNameLength = 100
	// MaxDigestRecipients is the maximum number of extra digest addresses.
	MaxDigestRecipients = 5
)

var addressValidator = validator.New()

// UpdateProfileInput represents a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID           uuid.UUID
	Email            string
	DisplayName      *string
	DigestEnabled    *bool
	DigestRecipients []string // replaced wholesale when non-nil
}

// UpdateProfileUseCase creates or updates the merchant's profile.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute applies the update and persists the profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to get profile: %w", err)
		}
		p = entity.NewProfile(input.UserID, input.Email, "")
	}

	// The identity provider owns the address; keep the profile copy current.
	if input.Email != "" {
		p.Email = input.Email
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if len(name) > MaxDisplayNameLength {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeDisplayNameTooLong,
				fmt.Sprintf("display_name must not exceed %d characters", MaxDisplayNameLength),
				domainerror.ErrDisplayNameTooLong,
			)
		}
		p.DisplayName = name
	}

	if input.DigestEnabled != nil {
		p.DigestEnabled = *input.DigestEnabled
	}

	if input.DigestRecipients != nil {
		recipients, err := normalizeRecipients(input.DigestRecipients)
		if err != nil {
			return nil, err
		}
		p.DigestRecipients = recipients
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &GetProfileOutput{
		Profile:            p,
		ResolvedName:       entity.ResolveDisplayName(p, input.Email),
		Persisted:          true,
		DigestAddressCount: len(p.DigestAddresses()),
	}, nil
}

func normalizeRecipients(raw []string) ([]string, error) {
	recipients := make([]string, 0, len(raw))
	for _, addr := range raw {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" {
			continue
		}
		if err := addressValidator.Var(addr, "email"); err != nil {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidDigestRecipient,
				fmt.Sprintf("%q is not a valid e-mail address", addr),
				domainerror.ErrInvalidDigestRecipient,
			)
		}
		recipients = append(recipients, addr)
	}

	if len(recipients) > MaxDigestRecipients {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeTooManyDigestRecipients,
			fmt.Sprintf("at most %d digest recipients are allowed", MaxDigestRecipients),
			domainerror.ErrTooManyDigestRecipients,
		)
	}
	return recipients, nil
}
