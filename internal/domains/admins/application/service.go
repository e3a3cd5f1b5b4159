package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unikontroll/storefront-api/internal/domains/admins/domain"
	"github.com/unikontroll/storefront-api/internal/domains/admins/ports"
)

// DefaultSessionTTL matches the storefront's four-hour admin session.
const DefaultSessionTTL = 4 * time.Hour

// Service implements the admin access gate against a token-keyed
// session store.
type Service struct {
	creds    domain.Credentials
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
}

type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTokenGenerator overrides session token generation.
func WithTokenGenerator(newToken func() string) Option {
	return func(s *Service) {
		if newToken != nil {
			s.newToken = newToken
		}
	}
}

func NewService(creds domain.Credentials, sessions ports.SessionStore, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Service{
		creds:    creds,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SessionTTL reports the configured session lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

// Login checks the supplied credentials and mints an expiring session
// token on success.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if !s.creds.Match(username, password) {
		return "", ports.ErrInvalidCredentials
	}
	token := s.newToken()
	if err := s.sessions.Save(ctx, token, s.now().Add(s.ttl)); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate reports whether the token carries a live admin session.
// Expired tokens are rejected and lazily removed.
func (s *Service) Authenticate(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ports.ErrInvalidSession
	}
	expiresAt, err := s.sessions.Get(ctx, token)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return ports.ErrInvalidSession
	}
	if err != nil {
		return err
	}
	if s.now().After(expiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return ports.ErrInvalidSession
	}
	return nil
}

// Logout revokes the token. Revoking an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, ports.ErrSessionNotFound) {
		return err
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
