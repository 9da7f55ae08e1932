package restapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// Deliveries implements ports.DeliveryService against the remote API.
type Deliveries struct {
	client *Client
}

// NewDeliveries creates the delivery service adapter.
func NewDeliveries(client *Client) *Deliveries {
	return &Deliveries{client: client}
}

func (s *Deliveries) List(ctx context.Context, page, size int) (domain.Page[domain.Delivery], error) {
	var result domain.Page[domain.Delivery]
	q := url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
	err := s.client.get(ctx, "/deliveries", &result, withQuery(q))
	return result, err
}

func (s *Deliveries) Get(ctx context.Context, id string, includeTracking bool) (domain.Delivery, error) {
	var delivery domain.Delivery
	q := url.Values{"includeTracking": []string{strconv.FormatBool(includeTracking)}}
	err := s.client.get(ctx, "/deliveries/"+url.PathEscape(id), &delivery, withQuery(q))
	return delivery, err
}

// Create posts the destination address; the order binding travels in the path.
func (s *Deliveries) Create(ctx context.Context, orderID string, req domain.CreateDeliveryRequest) (domain.Delivery, error) {
	var delivery domain.Delivery
	err := s.client.post(ctx, "/deliveries/"+url.PathEscape(orderID), req, &delivery)
	return delivery, err
}

func (s *Deliveries) UpdateStatus(ctx context.Context, id string, status domain.DeliveryStatus) (domain.Delivery, error) {
	var delivery domain.Delivery
	body := struct {
		Status domain.DeliveryStatus `json:"status"`
	}{Status: status}
	err := s.client.patch(ctx, "/deliveries/"+url.PathEscape(id)+"/status", body, &delivery)
	return delivery, err
}

func (s *Deliveries) Assign(ctx context.Context, id, deliveryPersonID string) (domain.Delivery, error) {
	var delivery domain.Delivery
	body := struct {
		DeliveryPersonID string `json:"deliveryPersonId"`
	}{DeliveryPersonID: deliveryPersonID}
	err := s.client.post(ctx, "/deliveries/"+url.PathEscape(id)+"/assign", body, &delivery)
	return delivery, err
}

var _ ports.DeliveryService = (*Deliveries)(nil)
