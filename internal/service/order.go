package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/dto"
	"storefront/internal/messaging"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// DefaultPublishTimeout bounds how long a committed order waits on the broker.
const DefaultPublishTimeout = 2 * time.Second

// ErrPricingMismatch is returned when an order disagrees with the catalog.
var ErrPricingMismatch = errors.New("pricing mismatch")

type OrderService interface {
	// SubmitOrder persists the order together with its invoice.
	SubmitOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
}

type OrderOption func(*orderServiceImpl)

// WithPricingVerification checks submitted prices and totals against the catalog.
func WithPricingVerification(enabled bool) OrderOption {
	return func(s *orderServiceImpl) { s.verifyPricing = enabled }
}

func WithPublisher(publisher messaging.Publisher) OrderOption {
	return func(s *orderServiceImpl) { s.publisher = publisher }
}

func WithPublishTimeout(timeout time.Duration) OrderOption {
	return func(s *orderServiceImpl) { s.publishTimeout = timeout }
}

func WithLogger(logger *slog.Logger) OrderOption {
	return func(s *orderServiceImpl) { s.logger = logger }
}

type orderServiceImpl struct {
	store         repository.Store
	publisher      messaging.Publisher
	publishTimeout time.Duration
	logger         *slog.Logger
	verifyPricing  bool
}

func NewOrderService(store repository.Store, opts ...OrderOption) OrderService {
	s := &orderServiceImpl{
		store:          store,
		publisher:      messaging.Nop{},
		publishTimeout: DefaultPublishTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *orderServiceImpl) SubmitOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if s.verifyPricing {
		if err := s.checkPricing(ctx, req); err != nil {
			return nil, err
		}
	}

	order := &model.Order{
		Customer: req.Customer,
		Items:    append([]model.OrderItem(nil), req.Items...),
		Total:    req.Total,
		Status:   model.OrderStatusPaid,
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Orders().Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		invoice := &model.Invoice{
			OrderID:  order.ID,
			Customer: order.Customer,
			Items:    model.InvoiceItemsFrom(order.Items),
			Total:    order.Total,
			Shipping: Shipping(order.Total),
			Status:   model.InvoiceStatusPaid,
		}
		if err := tx.Invoices().Create(ctx, invoice); err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CreateOrderResponse{Order: order}

	invoice, err := s.store.Invoices().FindByOrderID(ctx, order.ID)
	switch {
	case err == nil:
		url := InvoiceViewURL(invoice.ID)
		resp.InvoiceURL = &url
		s.publishOrderPlaced(ctx, order, invoice)
	case errors.Is(err, repository.ErrNotFound):
		s.logger.WarnContext(ctx, "invoice missing for committed order", slog.String("order_id", order.ID))
	default:
		return nil, fmt.Errorf("resolve invoice: %w", err)
	}

	return resp, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.store.Orders().FindByID(ctx, id)
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.store.Orders().FindAll(ctx)
}

func (s *orderServiceImpl) checkPricing(ctx context.Context, req *dto.CreateOrderRequest) error {
	sum := decimal.Zero
	for _, item := range req.Items {
		product, err := s.store.Products().FindByID(ctx, item.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: unknown product %q", ErrPricingMismatch, item.ID)
		}
		if err != nil {
			return fmt.Errorf("load product %q: %w", item.ID, err)
		}
		if !product.Price.Equal(item.Price) {
			return fmt.Errorf("%w: price of %q is %s, not %s", ErrPricingMismatch, item.ID, product.Price.StringFixed(2), item.Price.StringFixed(2))
		}
		sum = sum.Add(item.Subtotal())
	}

	if !sum.Equal(req.Total) {
		return fmt.Errorf("%w: total %s does not match items %s", ErrPricingMismatch, req.Total.StringFixed(2), sum.StringFixed(2))
	}
	return nil
}

// publishOrderPlaced never fails the request; the order is already committed.
// It runs detached from the request context and gives up after publishTimeout.
func (s *orderServiceImpl) publishOrderPlaced(ctx context.Context, order *model.Order, invoice *model.Invoice) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	event := messaging.OrderPlaced{
		OrderID:       order.ID,
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		CustomerEmail: order.Customer.Email,
		Total:         order.Total,
		Shipping:      invoice.Shipping,
		PlacedAt:      order.CreatedAt,
	}
	if err := s.publisher.PublishEvent(ctx, order.ID, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
