package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemLike records one user's like on a wishlist item.
type ItemLike struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	WishlistID uuid.UUID `gorm:"column:wishlist_id;type:uuid;not null"`
	ItemID     uuid.UUID `gorm:"column:item_id;type:uuid;not null;uniqueIndex:item_likes_item_user_key"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:item_likes_item_user_key"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ItemLike) TableName() string { return "item_likes" }
