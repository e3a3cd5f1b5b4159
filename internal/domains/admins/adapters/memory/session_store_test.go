package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unikontroll/storefront-api/internal/domains/admins/ports"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	_, err := store.Get(ctx, "tok-1")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "tok-1", expiresAt))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.True(t, got.Equal(expiresAt))

	require.NoError(t, store.Delete(ctx, "tok-1"))
	require.ErrorIs(t, store.Delete(ctx, "tok-1"), ports.ErrSessionNotFound)
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "stale", time.Now().Add(-time.Minute)))
	require.NoError(t, store.Save(ctx, "live", time.Now().Add(time.Hour)))

	require.NoError(t, store.PurgeExpired(ctx))

	_, err := store.Get(ctx, "stale")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(ctx, "live")
	require.NoError(t, err)
}
