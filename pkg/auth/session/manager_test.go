package session

import (
	"context"
	"testing"
	"time"
)

type fakeStore struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = "1"
	f.ttls[key] = ttl
	return nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	return ok, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeStore) SessionKey(accessID string) string {
	return "wl:session:" + accessID
}

func TestNewManagerValidatesDeps(t *testing.T) {
	if _, err := NewManager(nil, time.Minute); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewManager(newFakeStore(), 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := newFakeStore()
	mgr, err := NewManager(store, 30*time.Minute)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	ctx := context.Background()

	ok, err := mgr.HasSession(ctx, "jti-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected no session before start")
	}

	if err := mgr.Start(ctx, "jti-1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := store.ttls["wl:session:jti-1"]; got != 30*time.Minute {
		t.Fatalf("ttl = %v, want 30m", got)
	}

	ok, err = mgr.HasSession(ctx, "jti-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected live session after start")
	}

	if err := mgr.Revoke(ctx, "jti-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, _ = mgr.HasSession(ctx, "jti-1")
	if ok {
		t.Fatal("expected session gone after revoke")
	}
}

func TestStartRequiresAccessID(t *testing.T) {
	mgr, err := NewManager(newFakeStore(), time.Minute)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if err := mgr.Start(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty access id")
	}
}
