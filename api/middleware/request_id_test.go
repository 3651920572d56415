package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func runRequestID(t *testing.T, inbound string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/wishlists", nil)
	if inbound != "" {
		req.Header.Set(requestIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	RequestID(authTestLogger())(next).ServeHTTP(rec, req)
	return rec
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	rec := runRequestID(t, "")
	got := rec.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}

func TestRequestIDKeepsValidInbound(t *testing.T) {
	inbound := uuid.NewString()
	rec := runRequestID(t, inbound)
	if got := rec.Header().Get(requestIDHeader); got != inbound {
		t.Fatalf("expected inbound id %q echoed, got %q", inbound, got)
	}
}

func TestRequestIDReplacesGarbageInbound(t *testing.T) {
	rec := runRequestID(t, "../../etc/passwd")
	got := rec.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected replacement uuid, got %q", got)
	}
}

func TestRecovererWritesInternalEnvelope(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/wishlists", nil)
	rec := httptest.NewRecorder()
	Recoverer(authTestLogger())(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}
