package memory

import (
	"context"
	"sync"
	"time"

	"github.com/unikontroll/storefront-api/internal/domains/admins/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory token-to-expiry map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]time.Time{}}
}

func (s *SessionStore) Save(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = expiresAt
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expiresAt, ok := s.sessions[token]
	if !ok {
		return time.Time{}, ports.ErrSessionNotFound
	}
	return expiresAt, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return ports.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func (s *SessionStore) PurgeExpired(_ context.Context) error {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, expiresAt := range s.sessions {
		if now.After(expiresAt) {
			delete(s.sessions, token)
		}
	}
	return nil
}
