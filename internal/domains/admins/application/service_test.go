package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unikontroll/storefront-api/internal/domains/admins/adapters/memory"
	"github.com/unikontroll/storefront-api/internal/domains/admins/domain"
	"github.com/unikontroll/storefront-api/internal/domains/admins/ports"
)

func testCredentials(t *testing.T) domain.Credentials {
	t.Helper()
	creds, err := domain.NewCredentials("admin", "password")
	require.NoError(t, err)
	return creds
}

func TestLogin_MintsTokenOnValidCredentials(t *testing.T) {
	service := NewService(testCredentials(t), memory.NewSessionStore(), 0,
		WithTokenGenerator(func() string { return "tok-1" }))

	token, err := service.Login(context.Background(), "admin", "password")
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)

	require.NoError(t, service.Authenticate(context.Background(), token))
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	service := NewService(testCredentials(t), memory.NewSessionStore(), 0)

	_, err := service.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), "root", "password")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestAuthenticate_RejectsUnknownAndBlankTokens(t *testing.T) {
	service := NewService(testCredentials(t), memory.NewSessionStore(), 0)

	require.ErrorIs(t, service.Authenticate(context.Background(), ""), ports.ErrInvalidSession)
	require.ErrorIs(t, service.Authenticate(context.Background(), "nope"), ports.ErrInvalidSession)
}

func TestAuthenticate_ExpiredSessionIsRevoked(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := memory.NewSessionStore()
	service := NewService(testCredentials(t), sessions, time.Hour,
		WithClock(func() time.Time { return current }),
		WithTokenGenerator(func() string { return "tok-1" }))

	token, err := service.Login(context.Background(), "admin", "password")
	require.NoError(t, err)

	current = current.Add(59 * time.Minute)
	require.NoError(t, service.Authenticate(context.Background(), token))

	current = current.Add(2 * time.Minute)
	require.ErrorIs(t, service.Authenticate(context.Background(), token), ports.ErrInvalidSession)

	_, err = sessions.Get(context.Background(), token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestLogout_RevokesSession(t *testing.T) {
	service := NewService(testCredentials(t), memory.NewSessionStore(), 0)

	token, err := service.Login(context.Background(), "admin", "password")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))
	require.ErrorIs(t, service.Authenticate(context.Background(), token), ports.ErrInvalidSession)

	require.NoError(t, service.Logout(context.Background(), token))
	require.NoError(t, service.Logout(context.Background(), ""))
}

func TestSessionTTL_DefaultsToFourHours(t *testing.T) {
	service := NewService(testCredentials(t), memory.NewSessionStore(), 0)
	require.Equal(t, DefaultSessionTTL, service.SessionTTL())

	service = NewService(testCredentials(t), memory.NewSessionStore(), time.Minute)
	require.Equal(t, time.Minute, service.SessionTTL())
}
