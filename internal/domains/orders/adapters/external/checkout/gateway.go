package checkout

import (
	"context"
	"errors"

	checkoutclient "github.com/unikontroll/storefront-api/internal/clients/http/checkout"
	"github.com/unikontroll/storefront-api/internal/domains/orders/ports"
)

var _ ports.CheckoutGateway = (*Gateway)(nil)

// Gateway adapts the hosted-checkout HTTP client to the lifecycle's
// payment confirmation port.
type Gateway struct {
	client *checkoutclient.Client
}

// NewGateway wires a checkout HTTP client into a gateway adapter.
func NewGateway(client *checkoutclient.Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) CreateSession(ctx context.Context, req ports.SessionRequest) (ports.Session, error) {
	if g == nil || g.client == nil {
		return ports.Session{}, ports.ErrGatewayUnavailable
	}
	session, err := g.client.CreateSession(ctx, checkoutclient.SessionParams{
		Currency:        req.Currency,
		UnitAmount:      req.UnitAmount,
		Quantity:        req.Quantity,
		ProductName:     req.ProductName,
		ProductImageURL: req.ProductImageURL,
		CustomerEmail:   req.CustomerEmail,
		SuccessURL:      req.SuccessURL,
		CancelURL:       req.CancelURL,
		OrderReference:  req.OrderID,
	})
	if err != nil {
		return ports.Session{}, err
	}
	if session == nil || session.URL == "" {
		return ports.Session{}, errors.New("checkout session has no redirect URL")
	}
	return ports.Session{ID: session.ID, URL: session.URL}, nil
}

func (g *Gateway) GetSession(ctx context.Context, sessionID string) (ports.SessionStatus, error) {
	if g == nil || g.client == nil {
		return ports.SessionStatus{}, ports.ErrGatewayUnavailable
	}
	session, err := g.client.GetSession(ctx, sessionID)
	if err != nil {
		return ports.SessionStatus{}, err
	}
	return ports.SessionStatus{Paid: session.Paid(), Status: session.PaymentStatus}, nil
}
