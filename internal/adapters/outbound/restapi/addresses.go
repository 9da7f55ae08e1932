package restapi

import (
	"context"
	"net/url"

	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// Addresses implements ports.AddressLookup against the remote API, which in
// turn fronts the external postal-code service and caches repeated lookups.
type Addresses struct {
	client *Client
}

// NewAddresses creates the address lookup adapter.
func NewAddresses(client *Client) *Addresses {
	return &Addresses{client: client}
}

// addressPayload is the wire shape of a lookup answer.
type addressPayload struct {
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Complement   string `json:"complement"`
}

// ByZip resolves a normalized postal code. The street number is always left
// empty - the lookup cannot know it, the operator fills it in.
func (s *Addresses) ByZip(ctx context.Context, zip string) (domain.Address, error) {
	var payload addressPayload
	if err := s.client.get(ctx, "/addresses/"+url.PathEscape(zip), &payload); err != nil {
		return domain.Address{}, err
	}
	return domain.Address{
		Street:       payload.Street,
		Complement:   payload.Complement,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
		ZipCode:      payload.Cep,
	}, nil
}

var _ ports.AddressLookup = (*Addresses)(nil)
