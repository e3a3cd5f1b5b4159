//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminspostgres "github.com/unikontroll/storefront-api/internal/domains/admins/adapters/persistence/postgres"
	adminports "github.com/unikontroll/storefront-api/internal/domains/admins/ports"
	"github.com/unikontroll/storefront-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresSessionStore_SaveGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := adminspostgres.NewSessionStore(db)
	ctx := context.Background()
	expiresAt := time.Now().UTC().Add(4 * time.Hour).Truncate(time.Microsecond)

	_, err := store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, adminports.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "tok-1", expiresAt))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, expiresAt.Unix(), got.Unix())

	// Upsert extends the expiry.
	extended := expiresAt.Add(time.Hour)
	require.NoError(t, store.Save(ctx, "tok-1", extended))
	got, err = store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, extended.Unix(), got.Unix())

	require.NoError(t, store.Delete(ctx, "tok-1"))
	assert.ErrorIs(t, store.Delete(ctx, "tok-1"), adminports.ErrSessionNotFound)
}

func TestPostgresSessionStore_PurgeExpired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := adminspostgres.NewSessionStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "stale", time.Now().Add(-time.Minute)))
	require.NoError(t, store.Save(ctx, "live", time.Now().Add(time.Hour)))

	require.NoError(t, store.PurgeExpired(ctx))

	_, err := store.Get(ctx, "stale")
	assert.ErrorIs(t, err, adminports.ErrSessionNotFound)

	_, err = store.Get(ctx, "live")
	require.NoError(t, err)
}
