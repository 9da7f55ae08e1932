package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// orderLinkScanWindow bounds the delivery scan when resolving the delivery
// for an order. Inherited limitation: above this many total deliveries the
// scan can miss the match. Kept as-is; a full window is logged so the
// limitation is observable.
const orderLinkScanWindow = 100

// DeliveryFlow is the thin read/write flow over the remote delivery
// aggregate.
type DeliveryFlow struct {
	deliveries ports.DeliveryService
	log        *slog.Logger
}

// NewDeliveryFlow creates the delivery flow.
func NewDeliveryFlow(deliveries ports.DeliveryService, log *slog.Logger) *DeliveryFlow {
	return &DeliveryFlow{deliveries: deliveries, log: log}
}

// List fetches one zero-based window of deliveries.
func (f *DeliveryFlow) List(ctx context.Context, page, size int) (domain.Page[domain.Delivery], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return f.deliveries.List(ctx, page, size)
}

// Get fetches one delivery, optionally including its tracking history.
func (f *DeliveryFlow) Get(ctx context.Context, id string, includeTracking bool) (domain.Delivery, error) {
	return f.deliveries.Get(ctx, id, includeTracking)
}

// Create validates the destination address and submits the delivery bound to
// the given order.
func (f *DeliveryFlow) Create(ctx context.Context, orderID string, req domain.CreateDeliveryRequest) (domain.Delivery, error) {
	if orderID == "" {
		return domain.Delivery{}, domain.ErrMissingOrderID
	}
	if err := req.Validate(); err != nil {
		return domain.Delivery{}, fmt.Errorf("invalid delivery: %w", err)
	}
	delivery, err := f.deliveries.Create(ctx, orderID, req)
	if err != nil {
		return domain.Delivery{}, err
	}
	f.log.Info("delivery created", "delivery_id", delivery.ID, "order_id", orderID)
	return delivery, nil
}

// UpdateStatus requests a transition to the given status. Any target status
// is accepted here - transition rules, if any, are enforced server-side only.
func (f *DeliveryFlow) UpdateStatus(ctx context.Context, id string, status domain.DeliveryStatus) (domain.Delivery, error) {
	if !status.Valid() {
		return domain.Delivery{}, domain.ErrUnknownDeliveryStatus
	}
	return f.deliveries.UpdateStatus(ctx, id, status)
}

// Assign assigns the delivery to a delivery person.
func (f *DeliveryFlow) Assign(ctx context.Context, id, deliveryPersonID string) (domain.Delivery, error) {
	if deliveryPersonID == "" {
		return domain.Delivery{}, domain.ErrMissingDeliveryPerson
	}
	return f.deliveries.Assign(ctx, id, deliveryPersonID)
}

// FindByOrder resolves the delivery fulfilling an order by scanning a bounded
// window of all deliveries for a matching order id - there is no direct
// lookup on the remote API. A fetch failure is logged and reported as not
// found, never surfaced.
func (f *DeliveryFlow) FindByOrder(ctx context.Context, orderID string) (domain.Delivery, bool) {
	window, err := f.deliveries.List(ctx, 0, orderLinkScanWindow)
	if err != nil {
		f.log.Error("delivery scan for order failed", "order_id", orderID, "err", err)
		return domain.Delivery{}, false
	}
	if len(window.Content) == orderLinkScanWindow && !window.Last {
		f.log.Debug("delivery scan window full; matches beyond it are missed",
			"window", orderLinkScanWindow, "total", window.TotalElements)
	}
	for _, d := range window.Content {
		if d.OrderID == orderID {
			return d, true
		}
	}
	return domain.Delivery{}, false
}
