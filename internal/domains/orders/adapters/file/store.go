// Package file persists the order collection as a single JSON document,
// replaced atomically on every save.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
	"github.com/unikontroll/storefront-api/internal/domains/orders/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is the file-backed order store. Save writes the full document to
// a temp file in the same directory and renames it over the target, so a
// concurrent Load observes either the old or the new collection, never a
// torn write.
type Store struct {
	path   string
	logger *slog.Logger
}

// New prepares the data directory and returns a store rooted at path.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{path: path, logger: logger}, nil
}

// Load reads the persisted collection. A missing or corrupt data file
// yields an empty collection so the service stays available; corruption
// is logged rather than silently discarded.
func (s *Store) Load(_ context.Context) ([]domain.Order, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read order store: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Error("order store file is corrupt, serving empty collection",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return nil, nil
	}
	orders := make([]domain.Order, 0, len(doc.Orders))
	for _, rec := range doc.Orders {
		orders = append(orders, rec.toDomain())
	}
	return orders, nil
}

// Save replaces the persisted collection. On failure the previous
// document is left untouched and the caller must treat the mutation as
// not applied.
func (s *Store) Save(_ context.Context, orders []domain.Order) error {
	doc := document{Orders: make([]orderRecord, 0, len(orders))}
	for _, order := range orders {
		doc.Orders = append(doc.Orders, fromDomain(order))
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode order store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "orders-*.json")
	if err != nil {
		return fmt.Errorf("create temp order store: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write order store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("flush order store: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod order store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("commit order store: %w", err)
	}
	return nil
}

// document wraps the order list in the on-disk JSON layout.
type document struct {
	Orders []orderRecord `json:"orders"`
}

type orderRecord struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Address   string        `json:"address"`
	Qty       int           `json:"qty"`
	Total     int64         `json:"total"`
	Currency  string        `json:"currency"`
	Status    string        `json:"status"`
	Payment   paymentRecord `json:"payment"`
}

type paymentRecord struct {
	Method string     `json:"method"`
	PaidAt *time.Time `json:"paidAt"`
	Last4  *string    `json:"last4"`
}

func fromDomain(order domain.Order) orderRecord {
	return orderRecord{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Name:      order.Name,
		Email:     order.Email,
		Address:   order.Address,
		Qty:       order.Qty,
		Total:     order.Total,
		Currency:  order.Currency,
		Status:    string(order.Status),
		Payment: paymentRecord{
			Method: order.Payment.Method,
			PaidAt: order.Payment.PaidAt,
			Last4:  order.Payment.Last4,
		},
	}
}

func (r orderRecord) toDomain() domain.Order {
	return domain.Order{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Name:      r.Name,
		Email:     r.Email,
		Address:   r.Address,
		Qty:       r.Qty,
		Total:     r.Total,
		Currency:  r.Currency,
		Status:    domain.Status(r.Status),
		Payment: domain.Payment{
			Method: r.Payment.Method,
			PaidAt: r.Payment.PaidAt,
			Last4:  r.Payment.Last4,
		},
	}
}
