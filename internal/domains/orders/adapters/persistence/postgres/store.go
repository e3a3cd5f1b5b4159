// Package postgres implements the order store on PostgreSQL while
// keeping the whole-collection replace contract: every Save runs as one
// transaction, so readers see the previous or the next collection.
package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
	"github.com/unikontroll/storefront-api/internal/domains/orders/ports"
)

var _ ports.Store = (*Store)(nil)

// Store persists orders in PostgreSQL via GORM. Caller owns the DB
// lifecycle.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) ([]domain.Order, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := s.db.WithContext(ctx).Order("created_at ASC, seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, rec.toDomain())
	}
	return orders, nil
}

func (s *Store) Save(ctx context.Context, orders []domain.Order) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	records := make([]orderRecord, 0, len(orders))
	for i, order := range orders {
		records = append(records, fromDomain(order, i))
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&orderRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 100).Error
	})
}

func (s *Store) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres order store is not configured")
	}
	return nil
}

// orderRecord mirrors the orders table. Seq preserves insertion order so
// the stable tie-break on equal creation timestamps survives a reload.
type orderRecord struct {
	ID        string     `gorm:"primaryKey;column:id;size:64"`
	Seq       int        `gorm:"column:seq;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	Name      string     `gorm:"column:name"`
	Email     string     `gorm:"column:email"`
	Address   string     `gorm:"column:address"`
	Qty       int        `gorm:"column:qty"`
	Total     int64      `gorm:"column:total"`
	Currency  string     `gorm:"column:currency;size:8"`
	Status    string     `gorm:"column:status;type:varchar(16);index"`
	Method    string     `gorm:"column:payment_method;size:32"`
	PaidAt    *time.Time `gorm:"column:paid_at"`
	Last4     *string    `gorm:"column:last4;size:4"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

func fromDomain(order domain.Order, seq int) orderRecord {
	return orderRecord{
		ID:        order.ID,
		Seq:       seq,
		CreatedAt: order.CreatedAt,
		Name:      order.Name,
		Email:     order.Email,
		Address:   order.Address,
		Qty:       order.Qty,
		Total:     order.Total,
		Currency:  order.Currency,
		Status:    string(order.Status),
		Method:    order.Payment.Method,
		PaidAt:    order.Payment.PaidAt,
		Last4:     order.Payment.Last4,
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
			Method: r.Method,
			PaidAt: r.PaidAt,
			Last4:  r.Last4,
		},
	}
}
