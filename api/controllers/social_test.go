package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wishlane-app/wishlane-backend/internal/social"
	pkgAuth "github.com/wishlane-app/wishlane-backend/pkg/auth"
	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
)

type stubSocialService struct {
	likeErr      error
	liked        bool
	unliked      bool
	commentGot   social.CommentRequest
	deleteErr    error
	deletedIDs   []uuid.UUID
	likesSummary *social.LikesSummaryDTO
}

func (s *stubSocialService) Like(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) (*social.LikeDTO, error) {
	if s.likeErr != nil {
		return nil, s.likeErr
	}
	s.liked = true
	return &social.LikeDTO{ID: uuid.New(), ItemID: itemID, UserID: actor.UserID}, nil
}

func (s *stubSocialService) Unlike(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) error {
	s.unliked = true
	return nil
}

func (s *stubSocialService) ListLikes(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) (*social.LikesSummaryDTO, error) {
	if s.likesSummary != nil {
		return s.likesSummary, nil
	}
	return &social.LikesSummaryDTO{}, nil
}

func (s *stubSocialService) AddComment(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID, req social.CommentRequest) (*social.CommentDTO, error) {
	s.commentGot = req
	return &social.CommentDTO{ID: uuid.New(), ItemID: itemID, AuthorID: actor.UserID, Content: req.Content}, nil
}

func (s *stubSocialService) DeleteComment(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID, commentID uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = []uuid.UUID{wishlistID, itemID, commentID}
	return nil
}

func (s *stubSocialService) ListComments(ctx context.Context, actor pkgAuth.Identity, wishlistID, itemID uuid.UUID) ([]social.CommentDTO, error) {
	return []social.CommentDTO{}, nil
}

func itemRouteContext(ctx context.Context, wishlistID, itemID uuid.UUID) context.Context {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("wid", wishlistID.String())
	routeCtx.URLParams.Add("itemId", itemID.String())
	return context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
}

func TestItemLike(t *testing.T) {
	logg := testLogger()
	wishlistID := uuid.New()
	itemID := uuid.New()

	t.Run("missing identity", func(t *testing.T) {
		ctx := itemRouteContext(context.Background(), wishlistID, itemID)
		req := httptest.NewRequest(http.MethodPost, "/like", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		ItemLike(&stubSocialService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", rec.Code)
		}
	})

	t.Run("missing item maps to 404", func(t *testing.T) {
		ctx := authedContext(context.Background())
		ctx = itemRouteContext(ctx, wishlistID, itemID)
		req := httptest.NewRequest(http.MethodPost, "/like", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		stub := &stubSocialService{likeErr: pkgerrors.New(pkgerrors.CodeNotFound, "item not found")}
		ItemLike(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctx := authedContext(context.Background())
		ctx = itemRouteContext(ctx, wishlistID, itemID)
		req := httptest.NewRequest(http.MethodPost, "/like", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		stub := &stubSocialService{}
		ItemLike(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if !stub.liked {
			t.Fatalf("expected Like to be invoked")
		}
	})
}

func TestItemUnlike(t *testing.T) {
	logg := testLogger()
	ctx := authedContext(context.Background())
	ctx = itemRouteContext(ctx, uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodDelete, "/like", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	stub := &stubSocialService{}
	ItemUnlike(stub, logg).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !stub.unliked {
		t.Fatalf("expected Unlike to be invoked")
	}
}

func TestCommentAdd(t *testing.T) {
	logg := testLogger()
	wishlistID := uuid.New()
	itemID := uuid.New()

	t.Run("empty content", func(t *testing.T) {
		ctx := authedContext(context.Background())
		ctx = itemRouteContext(ctx, wishlistID, itemID)
		req := httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(`{"content":""}`)).WithContext(ctx)
		rec := httptest.NewRecorder()
		CommentAdd(&stubSocialService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty content, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctx := authedContext(context.Background())
		ctx = itemRouteContext(ctx, wishlistID, itemID)
		req := httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(`{"content":"love this"}`)).WithContext(ctx)
		rec := httptest.NewRecorder()
		stub := &stubSocialService{}
		CommentAdd(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.commentGot.Content != "love this" {
			t.Fatalf("expected content forwarded, got %q", stub.commentGot.Content)
		}
	})
}

func TestCommentDelete(t *testing.T) {
	logg := testLogger()
	wishlistID := uuid.New()
	itemID := uuid.New()
	commentID := uuid.New()

	buildRequest := func(stub *stubSocialService) *httptest.ResponseRecorder {
		ctx := authedContext(context.Background())
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("wid", wishlistID.String())
		routeCtx.URLParams.Add("itemId", itemID.String())
		routeCtx.URLParams.Add("commentId", commentID.String())
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(http.MethodDelete, "/comment/"+commentID.String(), nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		CommentDelete(stub, logg).ServeHTTP(rec, req)
		return rec
	}

	t.Run("author only", func(t *testing.T) {
		stub := &stubSocialService{deleteErr: pkgerrors.New(pkgerrors.CodeForbidden, "not the comment author")}
		rec := buildRequest(stub)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for non-author, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubSocialService{}
		rec := buildRequest(stub)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(stub.deletedIDs) != 3 || stub.deletedIDs[2] != commentID {
			t.Fatalf("expected DeleteComment invoked with route ids")
		}
	})
}
