// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table in the database.
// DigestRecipients is kept in PostgreSQL array literal form so the column works on SQLite too.
type ProfileModel struct {
	UserID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email            string         `gorm:"type:varchar(255);not null"`
	DisplayName      string         `gorm:"type:varchar(100)"`
	DigestEnabled    bool           `gorm:"not null;default:false;index"`
	DigestRecipients pq.StringArray `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	recipients := make([]string, len(m.DigestRecipients))
	copy(recipients, m.DigestRecipients)

	return &entity.Profile{
		UserID:           m.UserID,
		Email:            m.Email,
		DisplayName:      m.DisplayName,
		DigestEnabled:    m.DigestEnabled,
		DigestRecipients: recipients,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(p *entity.Profile) *ProfileModel {
	return &ProfileModel{
		UserID:           p.UserID,
		Email:            p.Email,
		DisplayName:      p.DisplayName,
		DigestEnabled:    p.DigestEnabled,
		DigestRecipients: pq.StringArray(p.DigestRecipients),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
