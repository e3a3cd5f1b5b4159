package ports

import (
	"context"
	"errors"
)

var ErrGatewayUnavailable = errors.New("checkout gateway is not configured")

// SessionRequest describes the hosted-checkout session to open for an
// order. UnitAmount is expressed in the currency's minor units.
type SessionRequest struct {
	OrderID         string
	CustomerEmail   string
	Quantity        int
	UnitAmount      int64
	Currency        string
	ProductName     string
	ProductImageURL string
	SuccessURL      string
	CancelURL       string
}

// Session is the provider-side handle for a single payment attempt.
type Session struct {
	ID  string
	URL string
}

// SessionStatus mirrors the provider's view of a session. Paid becomes
// true only when the provider itself reports the session settled; a
// client claiming success is never enough.
type SessionStatus struct {
	Paid   bool
	Status string
}

// CheckoutGateway abstracts the external payment processor's hosted
// checkout API. It is the sole source of truth for the paid transition.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
	GetSession(ctx context.Context, sessionID string) (SessionStatus, error)
}
