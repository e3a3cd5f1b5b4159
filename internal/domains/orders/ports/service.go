package ports

import (
	"context"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
)

// CreateOrderInput carries the customer-submitted checkout form.
type CreateOrderInput struct {
	Name    string
	Email   string
	Address string
	Qty     int
}

// CheckoutRedirect is handed back to the storefront so the browser can
// be sent to the provider's hosted payment page.
type CheckoutRedirect struct {
	OrderID     string
	RedirectURL string
}

// ConfirmResult reports the outcome of a payment confirmation attempt.
type ConfirmResult struct {
	OrderID string
	Paid    bool
	Status  string
}

// Service exposes order lifecycle use cases to transports.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CheckoutRedirect, error)
	ConfirmPayment(ctx context.Context, orderID, sessionID string) (ConfirmResult, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
