package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsulates like and comment persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a social repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLike inserts a like, ignoring duplicates on (item_id, user_id).
// On a repeat like the receiver is reloaded from the existing row so callers
// always see persisted state.
func (r *Repository) CreateLike(ctx context.Context, like *models.ItemLike) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(like)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).
			First(like, "item_id = ? AND user_id = ?", like.ItemID, like.UserID).Error
	}
	return nil
}

// DeleteLike removes the user's like if present.
func (r *Repository) DeleteLike(ctx context.Context, itemID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("item_id = ? AND user_id = ?", itemID, userID).
		Delete(&models.ItemLike{}).Error
}

// ListLikes returns the likes on an item, newest first.
func (r *Repository) ListLikes(ctx context.Context, itemID uuid.UUID) ([]models.ItemLike, error) {
	var likes []models.ItemLike
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// CreateComment inserts a comment.
func (r *Repository) CreateComment(ctx context.Context, comment *models.ItemComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindCommentByID loads a comment by its UUID.
func (r *Repository) FindCommentByID(ctx context.Context, id uuid.UUID) (*models.ItemComment, error) {
	var comment models.ItemComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes the comment.
func (r *Repository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ItemComment{}).Error
}

// ListComments returns the comments on an item in posting order.
func (r *Repository) ListComments(ctx context.Context, itemID uuid.UUID) ([]models.ItemComment, error) {
	var comments []models.ItemComment
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
