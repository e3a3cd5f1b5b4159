package ports

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("session is invalid or expired")
)

// Service is the admin access gate: it mints, checks, and revokes the
// session tokens that carry the admin capability.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) error
	Logout(ctx context.Context, token string) error
}
