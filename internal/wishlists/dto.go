package wishlists

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wishlane-app/wishlane-backend/internal/users"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
	"github.com/wishlane-app/wishlane-backend/pkg/enums"
)

// CreateWishlistRequest creates a new list owned by the caller.
type CreateWishlistRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateWishlistRequest patches name and/or description. Nil pointers mean
// "leave unchanged"; an empty string clears the field.
type UpdateWishlistRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// InviteRequest grants read access to the email address.
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AddItemRequest snapshots catalog product attributes onto the list.
type AddItemRequest struct {
	ProductID   *string         `json:"product_id" validate:"omitempty,max=100"`
	Title       string          `json:"title" validate:"required,max=500"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image" validate:"omitempty,max=2000"`
	Description *string         `json:"description" validate:"omitempty,max=5000"`
	Category    *string         `json:"category" validate:"omitempty,max=200"`
	RatingRate  *float64        `json:"rating_rate"`
	RatingCount *int            `json:"rating_count"`
}

// WishlistDTO is the API-facing shape of a wishlist.
type WishlistDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WishlistDetailDTO includes the owner profile and the item collection.
type WishlistDetailDTO struct {
	WishlistDTO
	Owner *users.ProfileDTO `json:"owner,omitempty"`
	Items []ItemDTO         `json:"items"`
}

// ItemDTO is the API-facing shape of a wishlist item.
type ItemDTO struct {
	ID          uuid.UUID         `json:"id"`
	WishlistID  uuid.UUID         `json:"wishlist_id"`
	ProductID   *string           `json:"product_id,omitempty"`
	Title       string            `json:"title"`
	Price       decimal.Decimal   `json:"price"`
	Image       *string           `json:"image,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	RatingRate  *float64          `json:"rating_rate,omitempty"`
	RatingCount *int              `json:"rating_count,omitempty"`
	AddedBy     uuid.UUID         `json:"added_by"`
	AddedByUser *users.ProfileDTO `json:"added_by_user,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// InviteDTO is the API-facing shape of an invite.
type InviteDTO struct {
	ID         uuid.UUID          `json:"id"`
	WishlistID uuid.UUID          `json:"wishlist_id"`
	Email      string             `json:"email"`
	InvitedBy  uuid.UUID          `json:"invited_by"`
	Status     enums.InviteStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	AcceptedAt *time.Time         `json:"accepted_at,omitempty"`
}

func wishlistFromModel(w *models.Wishlist) WishlistDTO {
	return WishlistDTO{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func itemFromModel(item *models.WishlistItem) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		WishlistID:  item.WishlistID,
		ProductID:   item.ProductID,
		Title:       item.ProductTitle,
		Price:       item.ProductPrice,
		Image:       item.ProductImage,
		Description: item.ProductDescription,
		Category:    item.ProductCategory,
		RatingRate:  item.ProductRatingRate,
		RatingCount: item.ProductRatingCount,
		AddedBy:     item.AddedBy,
		CreatedAt:   item.CreatedAt,
	}
}

func inviteFromModel(invite *models.WishlistInvite) InviteDTO {
	return InviteDTO{
		ID:         invite.ID,
		WishlistID: invite.WishlistID,
		Email:      invite.Email,
		InvitedBy:  invite.InvitedBy,
		Status:     invite.Status,
		CreatedAt:  invite.CreatedAt,
		AcceptedAt: invite.AcceptedAt,
	}
}
