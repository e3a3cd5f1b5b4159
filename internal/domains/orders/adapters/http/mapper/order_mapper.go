package mapper

import (
	"time"

	ordersdomain "github.com/unikontroll/storefront-api/internal/domains/orders/domain"
)

// Order is the transport-layer shape served to the admin table and kept
// field-compatible with the persisted JSON document.
type Order struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	Qty       int        `json:"qty"`
	Total     int64      `json:"total"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	Payment   Payment    `json:"payment"`
}

// Payment is the transport view of an order's payment sub-record.
type Payment struct {
	Method string     `json:"method"`
	PaidAt *time.Time `json:"paidAt"`
	Last4  *string    `json:"last4"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order ordersdomain.Order) Order {
	return Order{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Name:      order.Name,
		Email:     order.Email,
		Address:   order.Address,
		Qty:       order.Qty,
		Total:     order.Total,
		Currency:  order.Currency,
		Status:    string(order.Status),
		Payment: Payment{
			Method: order.Payment.Method,
			PaidAt: order.Payment.PaidAt,
			Last4:  order.Payment.Last4,
		},
	}
}

// FromDomainOrders converts a list of domain orders.
func FromDomainOrders(orders []ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
