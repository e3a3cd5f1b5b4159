package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/unikontroll/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/unikontroll/storefront-api/internal/domains/orders/ports"
)

const tracerName = "github.com/unikontroll/storefront-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order lifecycle service with tracing, logging,
// and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core lifecycle service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, input ordersports.CreateOrderInput) (*ordersports.CheckoutRedirect, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(attribute.Int("order.qty", input.Qty)))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.Int("order.qty", input.Qty))
	result, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order")
	}
	s.metrics.recordCreated(ctx)
	span.SetAttributes(attribute.String("order.id", result.OrderID))
	s.logInfo(ctx, "order created", slog.String("order.id", result.OrderID))
	return result, nil
}

func (s *Service) ConfirmPayment(ctx context.Context, orderID, sessionID string) (ordersports.ConfirmResult, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ConfirmPayment",
		trace.WithAttributes(attribute.String("order.id", orderID), attribute.String("checkout.session_id", sessionID)))
	defer span.End()

	s.logInfo(ctx, "confirming payment", slog.String("order.id", orderID))
	result, err := s.inner.ConfirmPayment(ctx, orderID, sessionID)
	if err != nil {
		return ordersports.ConfirmResult{}, s.handleError(ctx, span, err, "failed to confirm payment", slog.String("order.id", orderID))
	}
	if result.Paid {
		s.metrics.recordPaid(ctx)
	}
	span.SetAttributes(attribute.Bool("order.paid", result.Paid))
	s.logInfo(ctx, "payment confirmation handled",
		slog.String("order.id", orderID), slog.Bool("paid", result.Paid), slog.String("session.status", result.Status))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.DeleteOrder",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.String("order.id", orderID))
	if err := s.inner.DeleteOrder(ctx, orderID); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.String("order.id", orderID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.String("order.id", orderID))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersPaid    metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	paid, _ := m.Int64Counter("orders.service.paid", metric.WithDescription("Number of orders confirmed paid"))
	deleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{ordersCreated: created, ordersPaid: paid, ordersDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordPaid(ctx context.Context) {
	if m.ordersPaid != nil {
		m.ordersPaid.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)
