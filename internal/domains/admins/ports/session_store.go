package ports

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore maps opaque admin tokens to their expiry. Expired rows
// may linger until PurgeExpired runs; Get callers must check the expiry
// themselves.
type SessionStore interface {
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (time.Time, error)
	Delete(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) error
}
