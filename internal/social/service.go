package social

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wishlane-app/wishlane-backend/internal/users"
	pkgAuth "github.com/wishlane-app/wishlane-backend/pkg/auth"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes likes and comments on wishlist items.
type Service interface {
	Like(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) (*LikeDTO, error)
	Unlike(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) error
	ListLikes(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) (*LikesSummaryDTO, error)
	AddComment(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID, req CommentRequest) (*CommentDTO, error)
	DeleteComment(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID, commentID uuid.UUID) error
	ListComments(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) ([]CommentDTO, error)
}

type repository interface {
	CreateLike(ctx context.Context, like *models.ItemLike) error
	DeleteLike(ctx context.Context, itemID, userID uuid.UUID) error
	ListLikes(ctx context.Context, itemID uuid.UUID) ([]models.ItemLike, error)
	CreateComment(ctx context.Context, comment *models.ItemComment) error
	FindCommentByID(ctx context.Context, id uuid.UUID) (*models.ItemComment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, itemID uuid.UUID) ([]models.ItemComment, error)
}

type itemFinder interface {
	FindItemByID(ctx context.Context, id uuid.UUID) (*models.WishlistItem, error)
}

type profileDirectory interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Profile, error)
}

// ServiceParams groups dependencies for the social service.
type ServiceParams struct {
	Repo     repository
	Items    itemFinder
	Profiles profileDirectory
}

type service struct {
	repo     repository
	items    itemFinder
	profiles profileDirectory
}

// NewService builds a social service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("social repository is required")
	}
	if params.Items == nil {
		return nil, fmt.Errorf("item finder is required")
	}
	if params.Profiles == nil {
		return nil, fmt.Errorf("profile directory is required")
	}
	return &service{repo: params.Repo, items: params.Items, profiles: params.Profiles}, nil
}

// Like records the actor's like on the item. Repeat likes are a no-op.
func (s *service) Like(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) (*LikeDTO, error) {
	if _, err := s.loadItem(ctx, wishlistID, itemID); err != nil {
		return nil, err
	}

	like := &models.ItemLike{
		WishlistID: wishlistID,
		ItemID:     itemID,
		UserID:     actor.UserID,
	}
	if err := s.repo.CreateLike(ctx, like); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create like")
	}
	dto := likeFromModel(like)
	return &dto, nil
}

// Unlike removes the actor's like. Removing an absent like is a no-op.
func (s *service) Unlike(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) error {
	if _, err := s.loadItem(ctx, wishlistID, itemID); err != nil {
		return err
	}
	if err := s.repo.DeleteLike(ctx, itemID, actor.UserID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete like")
	}
	return nil
}

// ListLikes returns the like summary with user profiles attached.
func (s *service) ListLikes(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) (*LikesSummaryDTO, error) {
	if _, err := s.loadItem(ctx, wishlistID, itemID); err != nil {
		return nil, err
	}

	likes, err := s.repo.ListLikes(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list likes")
	}

	userIDs := make([]uuid.UUID, 0, len(likes))
	for i := range likes {
		userIDs = append(userIDs, likes[i].UserID)
	}
	profilesByID, err := s.lookupProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	summary := &LikesSummaryDTO{
		Count: len(likes),
		Likes: make([]LikeDTO, 0, len(likes)),
	}
	for i := range likes {
		dto := likeFromModel(&likes[i])
		if user, ok := profilesByID[likes[i].UserID]; ok {
			dto.User = user
		}
		if likes[i].UserID == actor.UserID {
			summary.LikedByMe = true
		}
		summary.Likes = append(summary.Likes, dto)
	}
	return summary, nil
}

// AddComment posts a comment authored by the actor.
func (s *service) AddComment(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID, req CommentRequest) (*CommentDTO, error) {
	if _, err := s.loadItem(ctx, wishlistID, itemID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	comment := &models.ItemComment{
		WishlistID: wishlistID,
		ItemID:     itemID,
		AuthorID:   actor.UserID,
		Content:    content,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create comment")
	}
	dto := commentFromModel(comment)
	return &dto, nil
}

// DeleteComment removes a comment. Only the author may delete it.
func (s *service) DeleteComment(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID, commentID uuid.UUID) error {
	if _, err := s.loadItem(ctx, wishlistID, itemID); err != nil {
		return err
	}

	comment, err := s.repo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "comment not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load comment")
	}
	if comment.ItemID != itemID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "comment not found")
	}
	if comment.AuthorID != actor.UserID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "only the author can delete this comment")
	}
	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete comment")
	}
	return nil
}

// ListComments returns the item's comments with author profiles attached.
func (s *service) ListComments(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) ([]CommentDTO, error) {
	if _, err := s.loadItem(ctx, wishlistID, itemID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list comments")
	}

	authorIDs := make([]uuid.UUID, 0, len(comments))
	for i := range comments {
		authorIDs = append(authorIDs, comments[i].AuthorID)
	}
	profilesByID, err := s.lookupProfiles(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		dto := commentFromModel(&comments[i])
		if author, ok := profilesByID[comments[i].AuthorID]; ok {
			dto.Author = author
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *service) loadItem(ctx context.Context, wishlistID, itemID uuid.UUID) (*models.WishlistItem, error) {
	if wishlistID == uuid.Nil || itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist and item ids are required")
	}
	item, err := s.items.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	if item.WishlistID != wishlistID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	return item, nil
}

func (s *service) lookupProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*users.ProfileDTO, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	profiles, err := s.profiles.FindByIDs(ctx, unique)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profiles")
	}

	byID := make(map[uuid.UUID]*users.ProfileDTO, len(profiles))
	for i := range profiles {
		dto := users.FromModel(&profiles[i])
		byID[profiles[i].ID] = &dto
	}
	return byID, nil
}
