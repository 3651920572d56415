package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pkgAuth "github.com/wishlane-app/wishlane-backend/pkg/auth"
	"github.com/wishlane-app/wishlane-backend/pkg/db/models"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubSocialRepo struct {
	likes    map[uuid.UUID]*models.ItemLike
	comments map[uuid.UUID]*models.ItemComment
}

func newStubSocialRepo() *stubSocialRepo {
	return &stubSocialRepo{
		likes:    map[uuid.UUID]*models.ItemLike{},
		comments: map[uuid.UUID]*models.ItemComment{},
	}
}

func (s *stubSocialRepo) CreateLike(_ context.Context, like *models.ItemLike) error {
	for _, existing := range s.likes {
		if existing.ItemID == like.ItemID && existing.UserID == like.UserID {
			// conflict target hit, insert skipped and the stored row reloaded
			*like = *existing
			return nil
		}
	}
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	like.CreatedAt = time.Now().UTC()
	s.likes[like.ID] = like
	return nil
}

func (s *stubSocialRepo) DeleteLike(_ context.Context, itemID, userID uuid.UUID) error {
	for id, like := range s.likes {
		if like.ItemID == itemID && like.UserID == userID {
			delete(s.likes, id)
		}
	}
	return nil
}

func (s *stubSocialRepo) ListLikes(_ context.Context, itemID uuid.UUID) ([]models.ItemLike, error) {
	var out []models.ItemLike
	for _, like := range s.likes {
		if like.ItemID == itemID {
			out = append(out, *like)
		}
	}
	return out, nil
}

func (s *stubSocialRepo) CreateComment(_ context.Context, comment *models.ItemComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = time.Now().UTC()
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubSocialRepo) FindCommentByID(_ context.Context, id uuid.UUID) (*models.ItemComment, error) {
	if c, ok := s.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSocialRepo) DeleteComment(_ context.Context, id uuid.UUID) error {
	delete(s.comments, id)
	return nil
}

func (s *stubSocialRepo) ListComments(_ context.Context, itemID uuid.UUID) ([]models.ItemComment, error) {
	var out []models.ItemComment
	for _, c := range s.comments {
		if c.ItemID == itemID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type stubItemFinder struct {
	items   map[uuid.UUID]*models.WishlistItem
	findErr error
}

func (s *stubItemFinder) FindItemByID(_ context.Context, id uuid.UUID) (*models.WishlistItem, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubProfileDir struct {
	profiles map[uuid.UUID]*models.Profile
}

func (s *stubProfileDir) FindByIDs(_ context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	var out []models.Profile
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fixture struct {
	svc        Service
	repo       *stubSocialRepo
	items      *stubItemFinder
	wishlistID uuid.UUID
	itemID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newStubSocialRepo()
	wishlistID := uuid.New()
	itemID := uuid.New()
	items := &stubItemFinder{items: map[uuid.UUID]*models.WishlistItem{
		itemID: {ID: itemID, WishlistID: wishlistID, ProductTitle: "vase"},
	}}
	profiles := &stubProfileDir{profiles: map[uuid.UUID]*models.Profile{}}
	svc, err := NewService(ServiceParams{Repo: repo, Items: items, Profiles: profiles})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return &fixture{svc: svc, repo: repo, items: items, wishlistID: wishlistID, itemID: itemID}
}

func actor() pkgAuth.Identity {
	return pkgAuth.Identity{UserID: uuid.New(), Email: "u@example.com"}
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

func TestLikeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := actor()

	first, err := f.svc.Like(ctx, user, f.wishlistID, f.itemID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	repeat, err := f.svc.Like(ctx, user, f.wishlistID, f.itemID)
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if repeat.ID != first.ID {
		t.Fatalf("repeat like id = %s, want stored %s", repeat.ID, first.ID)
	}
	if !repeat.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("repeat like created_at = %v, want stored %v", repeat.CreatedAt, first.CreatedAt)
	}

	summary, err := f.svc.ListLikes(ctx, user, f.wishlistID, f.itemID)
	if err != nil {
		t.Fatalf("list likes: %v", err)
	}
	if summary.Count != 1 {
		t.Fatalf("count = %d, want 1", summary.Count)
	}
	if !summary.LikedByMe {
		t.Fatal("expected liked_by_me")
	}
}

func TestUnlikeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := actor()

	if err := f.svc.Unlike(ctx, user, f.wishlistID, f.itemID); err != nil {
		t.Fatalf("unlike without like: %v", err)
	}

	if _, err := f.svc.Like(ctx, user, f.wishlistID, f.itemID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := f.svc.Unlike(ctx, user, f.wishlistID, f.itemID); err != nil {
		t.Fatalf("unlike: %v", err)
	}

	summary, err := f.svc.ListLikes(ctx, user, f.wishlistID, f.itemID)
	if err != nil {
		t.Fatalf("list likes: %v", err)
	}
	if summary.Count != 0 || summary.LikedByMe {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestLikeMissingItemIsNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Like(context.Background(), actor(), f.wishlistID, uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestLikeWrongWishlistIsNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Like(context.Background(), actor(), uuid.New(), f.itemID)
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestStoreFailureIsDependencyError(t *testing.T) {
	f := newFixture(t)
	f.items.findErr = errors.New("dial tcp 10.0.0.1:5432: connect: connection refused")

	_, err := f.svc.Like(context.Background(), actor(), f.wishlistID, f.itemID)
	assertCode(t, err, pkgerrors.CodeDependency)

	_, err = f.svc.ListComments(context.Background(), actor(), f.wishlistID, f.itemID)
	assertCode(t, err, pkgerrors.CodeDependency)
}

func TestAddCommentValidatesContent(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddComment(context.Background(), actor(), f.wishlistID, f.itemID, CommentRequest{Content: "   "})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestCommentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := actor()

	comment, err := f.svc.AddComment(ctx, author, f.wishlistID, f.itemID, CommentRequest{Content: "  love it  "})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.Content != "love it" {
		t.Fatalf("content not trimmed: %q", comment.Content)
	}
	if comment.AuthorID != author.UserID {
		t.Fatal("author not recorded")
	}

	comments, err := f.svc.ListComments(ctx, author, f.wishlistID, f.itemID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}

	err = f.svc.DeleteComment(ctx, actor(), f.wishlistID, f.itemID, comment.ID)
	assertCode(t, err, pkgerrors.CodeForbidden)

	if err := f.svc.DeleteComment(ctx, author, f.wishlistID, f.itemID, comment.ID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}

	err = f.svc.DeleteComment(ctx, author, f.wishlistID, f.itemID, comment.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)
}
