package social

import (
	"time"

	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/internal/users"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
)

// CommentRequest adds a comment to an item.
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// LikeDTO is the API-facing shape of a like.
type LikeDTO struct {
	ID        uuid.UUID         `json:"id"`
	ItemID    uuid.UUID         `json:"item_id"`
	UserID    uuid.UUID         `json:"user_id"`
	User      *users.ProfileDTO `json:"user,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// LikesSummaryDTO aggregates the likes on an item.
type LikesSummaryDTO struct {
	Count     int       `json:"count"`
	LikedByMe bool      `json:"liked_by_me"`
	Likes     []LikeDTO `json:"likes"`
}

// CommentDTO is the API-facing shape of a comment.
type CommentDTO struct {
	ID        uuid.UUID         `json:"id"`
	ItemID    uuid.UUID         `json:"item_id"`
	AuthorID  uuid.UUID         `json:"author_id"`
	Author    *users.ProfileDTO `json:"author,omitempty"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
}

func likeFromModel(like *models.ItemLike) LikeDTO {
	return LikeDTO{
		ID:        like.ID,
		ItemID:    like.ItemID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}
}

func commentFromModel(comment *models.ItemComment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		ItemID:    comment.ItemID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
