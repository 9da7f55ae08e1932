package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// DefaultPageSize is the window size for list views.
const DefaultPageSize = 10

// OrderFlow is the thin read/write flow over the remote order aggregate.
// Write intents are validated before any request is issued; everything else
// is a pass-through to the service port.
type OrderFlow struct {
	orders ports.OrderService
	log    *slog.Logger
}

// NewOrderFlow creates the order flow.
func NewOrderFlow(orders ports.OrderService, log *slog.Logger) *OrderFlow {
	return &OrderFlow{orders: orders, log: log}
}

// List fetches one zero-based window of orders. Out-of-range inputs are
// clamped rather than rejected.
func (f *OrderFlow) List(ctx context.Context, page, size int) (domain.Page[domain.Order], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return f.orders.List(ctx, page, size)
}

// Get fetches one order by id.
func (f *OrderFlow) Get(ctx context.Context, id string) (domain.Order, error) {
	return f.orders.Get(ctx, id)
}

// Create validates the write intent and submits it. A validation failure
// means no request was sent.
func (f *OrderFlow) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := req.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("invalid order: %w", err)
	}
	order, err := f.orders.Create(ctx, req)
	if err != nil {
		return domain.Order{}, err
	}
	f.log.Info("order created", "order_id", order.ID, "customer_id", order.CustomerID)
	return order, nil
}

// Update validates and submits a partial update.
func (f *OrderFlow) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error) {
	if err := req.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("invalid order update: %w", err)
	}
	return f.orders.Update(ctx, id, req)
}

// Delete issues the destructive call. The confirmation step belongs to the
// inbound adapter: this method must only be reached after explicit operator
// confirmation.
func (f *OrderFlow) Delete(ctx context.Context, id string) error {
	if err := f.orders.Delete(ctx, id); err != nil {
		return err
	}
	f.log.Info("order deleted", "order_id", id)
	return nil
}
