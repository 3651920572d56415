package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/wishlane-app/wishlane-backend/pkg/errors"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func TestWriteSuccessWrapsData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Data["hello"] != "world" {
		t.Fatalf("expected data payload, got %v", envelope.Data)
	}
}

func TestWriteSuccessStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccessStatus(rec, http.StatusCreated, map[string]bool{"created": true})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestWriteErrorMapsCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", pkgerrors.New(pkgerrors.CodeValidation, "name is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"), http.StatusUnauthorized, string(pkgerrors.CodeUnauthorized)},
		{"forbidden", pkgerrors.New(pkgerrors.CodeForbidden, "not allowed"), http.StatusForbidden, string(pkgerrors.CodeForbidden)},
		{"not found", pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found"), http.StatusNotFound, string(pkgerrors.CodeNotFound)},
		{"conflict", pkgerrors.New(pkgerrors.CodeConflict, "email already registered"), http.StatusConflict, string(pkgerrors.CodeConflict)},
		{"dependency", pkgerrors.New(pkgerrors.CodeDependency, "upstream down"), http.StatusServiceUnavailable, string(pkgerrors.CodeDependency)},
	}

	logg := testLogger()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), logg, rec, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			var envelope struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if envelope.Error.Code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, envelope.Error.Code)
			}
		})
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), rec,
		pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("dsn=postgres://secret"), "connect db"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if len(body) == 0 {
		t.Fatal("expected error body")
	}
	if strings.Contains(body, "secret") {
		t.Fatalf("internal detail leaked into response: %s", body)
	}
}

func TestWriteErrorWrapsPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), testLogger(), rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped error, got %d", rec.Code)
	}
}
