package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
)

func TestStore_SnapshotIsolation(t *testing.T) {
	store := NewStore()
	order, err := domain.NewOrder("ord-1", time.Now(), "Anna", "a@x.se", "Gatan 1", 1, 150, "SEK")
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), []domain.Order{*order}))

	first, err := store.Load(context.Background())
	require.NoError(t, err)
	first[0].Status = domain.StatusPaid

	second, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, second[0].Status)
}

func TestStore_SaveCopiesInput(t *testing.T) {
	store := NewStore()
	order, err := domain.NewOrder("ord-1", time.Now(), "Anna", "a@x.se", "Gatan 1", 1, 150, "SEK")
	require.NoError(t, err)

	input := []domain.Order{*order}
	require.NoError(t, store.Save(context.Background(), input))
	input[0].Status = domain.StatusPaid

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, loaded[0].Status)
}
