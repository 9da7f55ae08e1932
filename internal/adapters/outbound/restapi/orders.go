package restapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// Orders implements ports.OrderService against the remote API.
type Orders struct {
	client *Client
}

// NewOrders creates the order service adapter.
func NewOrders(client *Client) *Orders {
	return &Orders{client: client}
}

func (s *Orders) List(ctx context.Context, page, size int) (domain.Page[domain.Order], error) {
	var result domain.Page[domain.Order]
	q := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	err := s.client.get(ctx, "/orders", &result, withQuery(q))
	return result, err
}

func (s *Orders) Get(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	err := s.client.get(ctx, "/orders/"+url.PathEscape(id), &order)
	return order, err
}

func (s *Orders) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	var order domain.Order
	err := s.client.post(ctx, "/orders", req, &order)
	return order, err
}

func (s *Orders) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error) {
	var order domain.Order
	err := s.client.put(ctx, "/orders/"+url.PathEscape(id), req, &order)
	return order, err
}

func (s *Orders) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/orders/"+url.PathEscape(id))
}

var _ ports.OrderService = (*Orders)(nil)
