// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// IdentityClaims are the claims carried by access tokens from the identity provider.
type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// identityVerifier implements adapter.IdentityVerifier for HS256 tokens.
type identityVerifier struct {
	secret   []byte
	audience string
	clock    adapter.Clock
}

// NewIdentityVerifier creates a verifier for tokens signed with secret.
// When audience is non-empty the aud claim must contain it.
func NewIdentityVerifier(secret, audience string, clock adapter.Clock) adapter.IdentityVerifier {
	return &identityVerifier{
		secret:   []byte(secret),
		audience: audience,
		clock:    clock,
	}
}

// VerifyAccessToken validates the token signature and claims and returns the identity.
func (v *identityVerifier) VerifyAccessToken(ctx context.Context, token string) (*adapter.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.clock.Now),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", domainerror.ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", domainerror.ErrInvalidToken)
	}

	return &adapter.Identity{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
