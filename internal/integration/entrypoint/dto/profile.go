// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/merchant-dashboard/backend/internal/application/usecase/profile"
)

// UpdateProfileRequest represents the request body for a partial profile update.
type UpdateProfileRequest struct {
	DisplayName      *string  `json:"display_name,omitempty" binding:"omitempty,max=100"`
	DigestEnabled    *bool    `json:"digest_enabled,omitempty"`
	DigestRecipients []string `json:"digest_recipients,omitempty" binding:"omitempty,max=5"`
}

// ProfileResponse represents the merchant's profile in API responses.
type ProfileResponse struct {
	UserID           string     `json:"user_id"`
	Email            string     `json:"email"`
	DisplayName      string     `json:"display_name"`
	GreetingName     string     `json:"greeting_name"`
	DigestEnabled    bool       `json:"digest_enabled"`
	DigestRecipients []string   `json:"digest_recipients"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// ToProfileResponse converts a GetProfileOutput to ProfileResponse DTO.
func ToProfileResponse(output *profile.GetProfileOutput) ProfileResponse {
	p := output.Profile
	recipients := p.DigestRecipients
	if recipients == nil {
		recipients = []string{}
	}

	resp := ProfileResponse{
		UserID:           p.UserID.String(),
		Email:            p.Email,
		DisplayName:      p.DisplayName,
		GreetingName:     output.ResolvedName,
		DigestEnabled:    p.DigestEnabled,
		DigestRecipients: recipients,
	}
	if output.Persisted {
		updatedAt := p.UpdatedAt.UTC()
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
