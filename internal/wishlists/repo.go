package wishlists

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
	"github.com/wishlane-app/wishlane-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist, item, and invite persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlists repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWishlist inserts a new wishlist.
func (r *Repository) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	if wishlist.ID == uuid.Nil {
		wishlist.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(wishlist).Error
}

// FindWishlistByID loads a wishlist by its UUID.
func (r *Repository) FindWishlistByID(ctx context.Context, id uuid.UUID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.WithContext(ctx).First(&wishlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// ListWishlistsByOwner returns the lists created by the user, newest first.
func (r *Repository) ListWishlistsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}

// UpdateWishlist applies the column updates and returns the fresh row.
func (r *Repository) UpdateWishlist(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Wishlist, error) {
	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := r.db.WithContext(ctx).
			Model(&models.Wishlist{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindWishlistByID(ctx, id)
}

// DeleteWishlistCascade removes the wishlist and everything hanging off it
// inside one transaction.
func (r *Repository) DeleteWishlistCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.ItemLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.ItemComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wishlist_id = ?", id).Delete(&models.WishlistInvite{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Wishlist{}).Error
	})
}

// CreateItem inserts a wishlist item.
func (r *Repository) CreateItem(ctx context.Context, item *models.WishlistItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// FindItemByID loads a wishlist item by its UUID.
func (r *Repository) FindItemByID(ctx context.Context, id uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItemsByWishlist returns items in insertion order.
func (r *Repository) ListItemsByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem removes the item and its likes and comments.
func (r *Repository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemComment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.WishlistItem{}).Error
	})
}

// CreateInvite inserts a pending invite.
func (r *Repository) CreateInvite(ctx context.Context, invite *models.WishlistInvite) error {
	if invite.ID == uuid.Nil {
		invite.ID = uuid.New()
	}
	if invite.Status == "" {
		invite.Status = enums.InviteStatusPending
	}
	return r.db.WithContext(ctx).Create(invite).Error
}

// FindInvite loads the invite for a wishlist-email pair.
func (r *Repository) FindInvite(ctx context.Context, wishlistID uuid.UUID, email string) (*models.WishlistInvite, error) {
	var invite models.WishlistInvite
	if err := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND email = ?", wishlistID, email).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListInvites returns all invites for the wishlist, newest first.
func (r *Repository) ListInvites(ctx context.Context, wishlistID uuid.UUID) ([]models.WishlistInvite, error) {
	var invites []models.WishlistInvite
	if err := r.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// HasAcceptedInvite reports whether the email holds an accepted grant on the
// wishlist.
func (r *Repository) HasAcceptedInvite(ctx context.Context, wishlistID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WishlistInvite{}).
		Where("wishlist_id = ? AND email = ? AND status = ?", wishlistID, email, enums.InviteStatusAccepted).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AcceptPendingByEmail flips every pending invite for the email to accepted.
// Called when a profile with that email signs up or logs in.
func (r *Repository) AcceptPendingByEmail(ctx context.Context, email string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.WishlistInvite{}).
		Where("email = ? AND status = ?", email, enums.InviteStatusPending).
		Updates(map[string]any{
			"status":      enums.InviteStatusAccepted,
			"accepted_at": at,
		}).Error
}
