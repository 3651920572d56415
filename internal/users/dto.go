package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
)

// CreateProfileDTO carries the fields needed to insert a new profile.
type CreateProfileDTO struct {
	Email        string
	PasswordHash string
	FullName     string
}

// ToModel converts the DTO into a persistable profile.
func (d CreateProfileDTO) ToModel() *models.Profile {
	return &models.Profile{
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FullName:     d.FullName,
		IsActive:     true,
	}
}

// ProfileDTO is the API-facing shape of a profile.
type ProfileDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromModel maps the persisted profile to its DTO.
func FromModel(p *models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		LastLoginAt: p.LastLoginAt,
		CreatedAt:   p.CreatedAt,
	}
}
