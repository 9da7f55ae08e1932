package domain

import "fmt"

// DeliveryStatus is the transit lifecycle state of a delivery.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

// DeliveryStatuses lists all transit states in display order.
var DeliveryStatuses = []DeliveryStatus{
	DeliveryPending,
	DeliveryInTransit,
	DeliveryDelivered,
	DeliveryFailed,
}

var deliveryStatusLabels = map[DeliveryStatus]string{
	DeliveryPending:   "Pendente",
	DeliveryInTransit: "Em Trânsito",
	DeliveryDelivered: "Entregue",
	DeliveryFailed:    "Falhou",
}

// Valid reports whether s is a known transit state.
func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryStatusLabels[s]
	return ok
}

// Label returns the operator-facing display label for the status.
func (s DeliveryStatus) Label() string {
	if l, ok := deliveryStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// TrackingEvent is one entry in a delivery's chronological event history.
// Every field is optional; the remote API has emitted several generations of
// event payloads.
type TrackingEvent struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	OccurredAt  string `json:"occurredAt,omitempty"`
}

// When returns the event timestamp, preferring OccurredAt over CreatedAt.
func (e TrackingEvent) When() string {
	if e.OccurredAt != "" {
		return e.OccurredAt
	}
	return e.CreatedAt
}

// Describe returns the event description, falling back to the event type and
// finally to a generic placeholder.
func (e TrackingEvent) Describe() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Type != "" {
		return e.Type
	}
	return "Evento de rastreamento"
}

// Delivery is the logistics record fulfilling one order, owned by the remote
// API. The destination address may arrive in any of four historical shapes;
// callers must go through ResolveAddress rather than probing fields.
type Delivery struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"orderId"`
	DeliveryPersonID   string          `json:"deliveryPersonId,omitempty"`
	DeliveryPersonName string          `json:"deliveryPersonName,omitempty"`
	Status             DeliveryStatus  `json:"status"`
	Street             string          `json:"street,omitempty"`
	City               string          `json:"city,omitempty"`
	State              string          `json:"state,omitempty"`
	ZipCode            string          `json:"zipCode,omitempty"`
	PickupAddress      string          `json:"pickupAddress,omitempty"`
	DeliveryAddress    string          `json:"deliveryAddress,omitempty"`
	Address            *Address        `json:"address,omitempty"`
	AddressInfo        *AddressInfo    `json:"addressInfo,omitempty"`
	Events             []TrackingEvent `json:"events,omitempty"`
	EstimatedTime      string          `json:"estimatedTime,omitempty"`
	ActualTime         string          `json:"actualTime,omitempty"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

// AddressKind tags which historical shape a delivery's address was resolved
// from. Exactly one branch is taken per delivery, in fixed precedence order,
// regardless of how many shapes are simultaneously populated.
type AddressKind int

const (
	// AddressUnavailable means no recognized shape was populated.
	AddressUnavailable AddressKind = iota
	// AddressFromLookup is the AddressInfo shape resolved by the remote lookup.
	AddressFromLookup
	// AddressFromFlatFields is the flat street/city/state/zipCode shape.
	AddressFromFlatFields
	// AddressFromStructured is the manually entered structured Address shape.
	AddressFromStructured
	// AddressFromRawString is the raw free-text deliveryAddress shape.
	AddressFromRawString
)

// AddressView is the resolved, display-ready variant of a delivery address.
type AddressView struct {
	Kind AddressKind

	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string

	// Raw holds the free-text address when Kind is AddressFromRawString.
	Raw string
}

// ResolveAddress reduces the four historical address shapes to a single
// variant. Precedence: lookup-derived AddressInfo, then flat fields, then the
// structured Address, then the raw string, then unavailable.
func (d Delivery) ResolveAddress() AddressView {
	switch {
	case d.AddressInfo != nil:
		return AddressView{
			Kind:         AddressFromLookup,
			Street:       d.AddressInfo.Street,
			Neighborhood: d.AddressInfo.Neighborhood,
			City:         d.AddressInfo.City,
			State:        d.AddressInfo.State,
			ZipCode:      d.AddressInfo.Cep,
		}
	case d.Street != "" && d.City != "":
		return AddressView{
			Kind:    AddressFromFlatFields,
			Street:  d.Street,
			City:    d.City,
			State:   d.State,
			ZipCode: d.ZipCode,
		}
	case d.Address != nil:
		return AddressView{
			Kind:         AddressFromStructured,
			Street:       d.Address.Street,
			Number:       d.Address.Number,
			Complement:   d.Address.Complement,
			Neighborhood: d.Address.Neighborhood,
			City:         d.Address.City,
			State:        d.Address.State,
			ZipCode:      d.Address.ZipCode,
		}
	case d.DeliveryAddress != "":
		return AddressView{Kind: AddressFromRawString, Raw: d.DeliveryAddress}
	default:
		return AddressView{Kind: AddressUnavailable}
	}
}

// String renders the resolved address as a single display line.
func (v AddressView) String() string {
	switch v.Kind {
	case AddressFromLookup:
		return fmt.Sprintf("%s, %s, %s - %s, %s", v.Street, v.Neighborhood, v.City, v.State, v.ZipCode)
	case AddressFromFlatFields:
		return fmt.Sprintf("%s, %s - %s, %s", v.Street, v.City, v.State, v.ZipCode)
	case AddressFromStructured:
		line := v.Street + ", " + v.Number
		if v.Complement != "" {
			line += " - " + v.Complement
		}
		return fmt.Sprintf("%s, %s, %s - %s, %s", line, v.Neighborhood, v.City, v.State, v.ZipCode)
	case AddressFromRawString:
		return v.Raw
	default:
		return "Endereço não disponível"
	}
}

// CreateDeliveryRequest is the write intent for a new delivery, bound to an
// existing order id at the transport level.
type CreateDeliveryRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Validate checks that the destination address is complete.
func (r CreateDeliveryRequest) Validate() error {
	if r.Street == "" || r.City == "" || r.State == "" || r.ZipCode == "" {
		return ErrIncompleteAddress
	}
	return nil
}
