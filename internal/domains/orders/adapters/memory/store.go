package memory

import (
	"context"
	"sync"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
	"github.com/unikontroll/storefront-api/internal/domains/orders/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is an in-memory order store used in tests and DSN-less tooling
// runs. Load hands out copies so callers cannot mutate the snapshot.
type Store struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot, nil
}

func (s *Store) Save(_ context.Context, orders []domain.Order) error {
	replacement := make([]domain.Order, len(orders))
	copy(replacement, orders)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = replacement
	return nil
}
