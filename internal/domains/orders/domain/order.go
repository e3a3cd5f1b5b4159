package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates order progression. The state machine is pending→paid;
// paid is terminal.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// PaymentMethodCheckout marks orders settled through the hosted-checkout
// provider.
const PaymentMethodCheckout = "checkout"

var (
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyAddress     = errors.New("address is required")
	ErrEmptyID          = errors.New("order id is required")
	ErrInvalidQty       = errors.New("quantity must be at least one")
	ErrInvalidStatus    = errors.New("order status is invalid")
	ErrMissingPaidAt    = errors.New("paid order is missing its paid timestamp")
	ErrInvalidUnitPrice = errors.New("unit price must be greater than zero")
)

// Payment carries the processor-facing slice of an order. PaidAt and
// Last4 are nil until the pending→paid transition and never cleared.
type Payment struct {
	Method string
	PaidAt *time.Time
	Last4  *string
}

// Order models a customer's purchase request plus its evolving payment
// state. Everything except Status and Payment is immutable after
// creation.
type Order struct {
	ID        string
	CreatedAt time.Time
	Name      string
	Email     string
	Address   string
	Qty       int
	Total     int64
	Currency  string
	Status    Status
	Payment   Payment
}

// NewOrder validates customer input and constructs a pending order.
// A quantity below one is coerced to one rather than rejected; the total
// is fixed at creation time (unit price × quantity) and never recomputed.
func NewOrder(id string, createdAt time.Time, name, email, address string, qty int, unitPrice int64, currency string) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if unitPrice <= 0 {
		return nil, ErrInvalidUnitPrice
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if qty < 1 {
		qty = 1
	}
	return &Order{
		ID:        id,
		CreatedAt: createdAt,
		Name:      name,
		Email:     email,
		Address:   address,
		Qty:       qty,
		Total:     unitPrice * int64(qty),
		Currency:  currency,
		Status:    StatusPending,
		Payment:   Payment{Method: PaymentMethodCheckout},
	}, nil
}

// Paid reports whether the order reached its terminal state.
func (o *Order) Paid() bool {
	return o.Status == StatusPaid
}

// MarkPaid applies the pending→paid transition. Calling it on an order
// that is already paid is a no-op, so confirmation retries can never move
// the state backwards or overwrite the original settlement timestamp.
func (o *Order) MarkPaid(at time.Time) {
	if o.Status == StatusPaid {
		return
	}
	paidAt := at
	o.Status = StatusPaid
	o.Payment.PaidAt = &paidAt
}

// Validate re-applies core invariants before persistence.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrEmptyID
	}
	if o.Qty < 1 {
		return ErrInvalidQty
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	if o.Status == StatusPaid && o.Payment.PaidAt == nil {
		return ErrMissingPaidAt
	}
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}
