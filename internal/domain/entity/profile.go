// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// defaultDisplayName is used when neither a profile name nor an e-mail is available.
const defaultDisplayName = "there"

// Profile represents a merchant's dashboard profile.
// The identity itself lives with the external identity provider; UserID is its subject.
type Profile struct {
	UserID           uuid.UUID
	Email            string
	DisplayName      string
	DigestEnabled    bool
	DigestRecipients []string // extra addresses that receive the weekly digest
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewProfile creates a new Profile with default values.
func NewProfile(userID uuid.UUID, email, displayName string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ResolveDisplayName picks the greeting name shown on the dashboard:
// the profile display name, else the e-mail local part, else a generic fallback.
func ResolveDisplayName(profile *Profile, email string) string {
	if profile != nil && strings.TrimSpace(profile.DisplayName) != "" {
		return strings.TrimSpace(profile.DisplayName)
	}
	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		return local
	}
	if email != "" && !strings.Contains(email, "@") {
		return email
	}
	return defaultDisplayName
}

// DigestAddresses returns the de-duplicated list of addresses for the weekly digest.
func (p *Profile) DigestAddresses() []string {
	seen := make(map[string]struct{}, len(p.DigestRecipients)+1)
	addresses := make([]string, 0, len(p.DigestRecipients)+1)
	for _, addr := range append([]string{p.Email}, p.DigestRecipients...) {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addresses = append(addresses, addr)
	}
	return addresses
}
