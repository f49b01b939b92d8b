// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity represents the current user as asserted by the external identity provider.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// IdentityVerifier verifies access tokens issued by the identity provider.
// It never issues tokens itself.
type IdentityVerifier interface {
	// VerifyAccessToken validates an access token and returns the identity it carries.
	VerifyAccessToken(ctx context.Context, token string) (*Identity, error)
}
