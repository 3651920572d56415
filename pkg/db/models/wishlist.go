package models

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a named collection of saved products owned by one profile.
type Wishlist struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedBy   uuid.UUID `gorm:"column:created_by;type:uuid;not null;index:wishlists_created_by_idx"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Wishlist) TableName() string { return "wishlists" }
