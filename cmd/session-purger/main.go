// Command session-purger removes expired admin sessions from the
// PostgreSQL session store. Intended to run on a schedule host.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	adminspostgres "github.com/unikontroll/storefront-api/internal/domains/admins/adapters/persistence/postgres"
	platformpostgres "github.com/unikontroll/storefront-api/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}

	store := adminspostgres.NewSessionStore(db)
	if err := store.PurgeExpired(ctx); err != nil {
		log.Fatalf("failed to purge sessions: %v", err)
	}
	log.Printf("session purge completed")
}
