package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/wishlane-app/wishlane-backend/pkg/enums"
)

// WishlistInvite is a pending or accepted collaboration grant keyed by the
// invited email. Acceptance happens when a profile with that email
// authenticates.
type WishlistInvite struct {
	ID         uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	WishlistID uuid.UUID          `gorm:"column:wishlist_id;type:uuid;not null;uniqueIndex:wishlist_invites_wishlist_email_key"`
	Email      string             `gorm:"type:text;not null;uniqueIndex:wishlist_invites_wishlist_email_key;index:wishlist_invites_email_idx"`
	InvitedBy  uuid.UUID          `gorm:"column:invited_by;type:uuid;not null"`
	Status     enums.InviteStatus `gorm:"type:text;not null;default:'pending'"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
	AcceptedAt *time.Time         `gorm:"column:accepted_at"`
}

func (WishlistInvite) TableName() string { return "wishlist_invites" }
