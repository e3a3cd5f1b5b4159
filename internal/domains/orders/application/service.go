package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
	"github.com/unikontroll/storefront-api/internal/domains/orders/ports"
)

// Config fixes the deployment-wide pricing and URL settings the order
// lifecycle depends on. Total amounts are computed once at creation from
// UnitPrice, which is expressed in whole currency units.
type Config struct {
	UnitPrice       int64
	Currency        string
	ProductName     string
	ProductImageURL string
	PublicBaseURL   string
}

// Service owns order creation and the pending→paid transition. A single
// mutex serializes every load-mutate-save cycle against the store, so a
// confirmation racing a deletion cannot silently discard the other
// writer's mutation.
type Service struct {
	store   ports.Store
	gateway ports.CheckoutGateway
	cfg     Config
	now     func() time.Time
	newID   func() string

	mu sync.Mutex
}

// Option customizes service construction.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides order id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService builds the order lifecycle service. Gateway may be nil when
// the processor is not configured; checkout requests then fail with
// ErrPaymentUnavailable while the rest of the surface keeps working.
func NewService(store ports.Store, gateway ports.CheckoutGateway, cfg Config, opts ...Option) *Service {
	s := &Service{
		store:   store,
		gateway: gateway,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateOrder persists a pending order and opens a hosted-checkout
// session for it. The order is saved before the provider is contacted,
// so a provider outage leaves an orphaned pending order rather than a
// paid-but-unrecorded one.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.CheckoutRedirect, error) {
	order, err := domain.NewOrder(
		s.newID(),
		s.now().UTC(),
		input.Name,
		input.Email,
		input.Address,
		input.Qty,
		s.cfg.UnitPrice,
		s.cfg.Currency,
	)
	if err != nil {
		return nil, mapError(err)
	}

	if err := s.appendOrder(ctx, *order); err != nil {
		return nil, err
	}

	if s.gateway == nil {
		return nil, ErrPaymentUnavailable
	}
	session, err := s.gateway.CreateSession(ctx, s.sessionRequest(order))
	if err != nil {
		if errors.Is(err, ports.ErrGatewayUnavailable) {
			return nil, ErrPaymentUnavailable
		}
		return nil, fmt.Errorf("%w: %w", ErrPaymentUnavailable, err)
	}
	return &ports.CheckoutRedirect{OrderID: order.ID, RedirectURL: session.URL}, nil
}

// ConfirmPayment asks the gateway for the session's status and, only if
// the provider reports it paid, applies the pending→paid transition.
// Re-invoking it on an already-paid order is a no-op that still reports
// Paid=true.
func (s *Service) ConfirmPayment(ctx context.Context, orderID, sessionID string) (ports.ConfirmResult, error) {
	if s.gateway == nil {
		return ports.ConfirmResult{}, ErrPaymentUnavailable
	}
	status, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		// Timeouts and provider errors mean "not yet confirmed", never "paid".
		return ports.ConfirmResult{}, fmt.Errorf("%w: %w", ErrPaymentUnavailable, err)
	}
	result := ports.ConfirmResult{OrderID: orderID, Paid: status.Paid, Status: status.Status}
	if !status.Paid {
		return result, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.store.Load(ctx)
	if err != nil {
		return ports.ConfirmResult{}, err
	}
	idx := indexByID(orders, orderID)
	if idx < 0 {
		return ports.ConfirmResult{}, ports.ErrNotFound
	}
	if orders[idx].Paid() {
		return result, nil
	}
	orders[idx].MarkPaid(s.now().UTC())
	if err := s.store.Save(ctx, orders); err != nil {
		return ports.ConfirmResult{}, err
	}
	return result, nil
}

// ListOrders returns every order, newest first. Orders sharing a
// creation timestamp keep their insertion order.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// DeleteOrder removes the order with the given id and persists the
// reduced collection.
func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	remaining := orders[:0:0]
	for _, order := range orders {
		if order.ID != orderID {
			remaining = append(remaining, order)
		}
	}
	if len(remaining) == len(orders) {
		return ports.ErrNotFound
	}
	return s.store.Save(ctx, remaining)
}

func (s *Service) appendOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return s.store.Save(ctx, orders)
}

func (s *Service) sessionRequest(order *domain.Order) ports.SessionRequest {
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	return ports.SessionRequest{
		OrderID:         order.ID,
		CustomerEmail:   order.Email,
		Quantity:        order.Qty,
		UnitAmount:      s.cfg.UnitPrice * 100,
		Currency:        order.Currency,
		ProductName:     s.cfg.ProductName,
		ProductImageURL: s.cfg.ProductImageURL,
		SuccessURL:      base + "/success.html?orderId=" + order.ID + "&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:       base + "/cancel.html?orderId=" + order.ID,
	}
}

func indexByID(orders []domain.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

var _ ports.Service = (*Service)(nil)
