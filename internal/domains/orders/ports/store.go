package ports

import (
	"context"
	"errors"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Store owns the durable order collection. Save replaces the whole
// collection in a single atomic commit; Load returns a consistent
// snapshot, which is either the pre- or post-state of any concurrent
// Save, never a partial write.
type Store interface {
	Load(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, orders []domain.Order) error
}
