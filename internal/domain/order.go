package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The remote API speaks JSON numbers for monetary values, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// OrderStatus is the fulfillment lifecycle state of an order.
// The set of states is owned by the remote API; the console never enforces
// transitions, it only renders and requests them.
type OrderStatus string

const (
	OrderCreated    OrderStatus = "CREATED"
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderPreparing  OrderStatus = "PREPARING"
	OrderReady      OrderStatus = "READY"
	OrderInDelivery OrderStatus = "IN_DELIVERY"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists all lifecycle states in display order.
var OrderStatuses = []OrderStatus{
	OrderCreated,
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReady,
	OrderInDelivery,
	OrderDelivered,
	OrderCancelled,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderCreated:    "Criado",
	OrderPending:    "Pendente",
	OrderConfirmed:  "Confirmado",
	OrderPreparing:  "Preparando",
	OrderReady:      "Pronto",
	OrderInDelivery: "Em Entrega",
	OrderDelivered:  "Entregue",
	OrderCancelled:  "Cancelado",
}

// Valid reports whether s is a known order lifecycle state.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns the operator-facing display label for the status.
// Unknown statuses fall back to the raw value so a newer API never breaks rendering.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID          string          `json:"id,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotal returns quantity x price with exact decimal arithmetic.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Validate checks the client-side creation constraints for an item.
func (i OrderItem) Validate() error {
	if i.ProductName == "" {
		return ErrMissingProductName
	}
	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if i.Price.LessThan(minItemPrice) {
		return ErrInvalidPrice
	}
	return nil
}

var minItemPrice = decimal.RequireFromString("0.01")

// Order is a customer purchase request, owned by the remote API.
// TotalAmount is trusted as returned by the server and never recomputed onto
// the entity; DisplayTotal exists for form previews only.
type Order struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

// CreateOrderRequest is the write intent for a new order.
type CreateOrderRequest struct {
	CustomerID string      `json:"customerId"`
	Items      []OrderItem `json:"items"`
}

// Validate checks the creation constraints before any request is issued.
func (r CreateOrderRequest) Validate() error {
	if r.CustomerID == "" {
		return ErrMissingCustomer
	}
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DisplayTotal computes the sum of item subtotals for form previews.
func (r CreateOrderRequest) DisplayTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// UpdateOrderRequest is a partial order update; nil fields are omitted.
type UpdateOrderRequest struct {
	Status *OrderStatus `json:"status,omitempty"`
	Items  []OrderItem  `json:"items,omitempty"`
}

// Validate checks that a requested status, when present, is a known state.
func (r UpdateOrderRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return ErrUnknownOrderStatus
	}
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
