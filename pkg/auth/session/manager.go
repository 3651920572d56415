package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Store is the subset of the redis client the manager needs.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, keys ...string) error
	SessionKey(accessID string) string
}

// Manager tracks live sessions keyed by access token id so that logout can
// revoke a token before its expiry.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) (*Manager, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &Manager{store: store, ttl: ttl}, nil
}

// Start registers a new session for the access token id.
func (m *Manager) Start(ctx context.Context, accessID string) error {
	if accessID == "" {
		return errors.New("access id is required")
	}
	if err := m.store.Set(ctx, m.store.SessionKey(accessID), "1", m.ttl); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// HasSession reports whether the access token id still maps to a live session.
func (m *Manager) HasSession(ctx context.Context, accessID string) (bool, error) {
	if accessID == "" {
		return false, nil
	}
	ok, err := m.store.Exists(ctx, m.store.SessionKey(accessID))
	if err != nil {
		return false, fmt.Errorf("checking session: %w", err)
	}
	return ok, nil
}

// Revoke removes the session, invalidating the token immediately.
func (m *Manager) Revoke(ctx context.Context, accessID string) error {
	if accessID == "" {
		return nil
	}
	if err := m.store.Del(ctx, m.store.SessionKey(accessID)); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}
