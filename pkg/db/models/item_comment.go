package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemComment is a user comment on a wishlist item.
type ItemComment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	WishlistID uuid.UUID `gorm:"column:wishlist_id;type:uuid;not null"`
	ItemID     uuid.UUID `gorm:"column:item_id;type:uuid;not null;index:item_comments_item_id_idx"`
	AuthorID   uuid.UUID `gorm:"column:author_id;type:uuid;not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ItemComment) TableName() string { return "item_comments" }
