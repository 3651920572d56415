package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WishlistItem is a product snapshot attached to a wishlist. Product
// attributes are copied at add-time so later catalog changes never alter a
// saved entry.
type WishlistItem struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	WishlistID         uuid.UUID       `gorm:"column:wishlist_id;type:uuid;not null;index:wishlist_items_wishlist_id_idx"`
	ProductID          *string         `gorm:"column:product_id"`
	ProductTitle       string          `gorm:"column:product_title;not null"`
	ProductPrice       decimal.Decimal `gorm:"column:product_price;type:numeric(12,2);not null"`
	ProductImage       *string         `gorm:"column:product_image"`
	ProductDescription *string         `gorm:"column:product_description"`
	ProductCategory    *string         `gorm:"column:product_category"`
	ProductRatingRate  *float64        `gorm:"column:product_rating_rate"`
	ProductRatingCount *int            `gorm:"column:product_rating_count"`
	AddedBy            uuid.UUID       `gorm:"column:added_by;type:uuid;not null"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
