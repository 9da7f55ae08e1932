package domain

import "strings"

// Address is a structured destination address, produced either by operator
// entry or by the postal-code lookup.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// AddressInfo is the lookup-derived address shape attached to a delivery by
// the remote API after it resolved the zip code itself.
type AddressInfo struct {
	ID           string `json:"id"`
	DeliveryID   string `json:"deliveryId"`
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	FetchedAt    string `json:"fetchedAt"`
}

// NormalizeZip strips every non-digit character from a raw zip code input.
func NormalizeZip(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ZipLength is the fixed length of a normalized postal code (CEP).
const ZipLength = 8
