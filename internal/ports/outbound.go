package ports

import (
	"context"

	"github.com/veloro/deliverydesk/internal/domain"
)

// TokenStore persists the single bearer token across process restarts.
// This is the durable half of the session store; the in-memory half lives in
// internal/app.
//
// Error Contract:
// - Load returns ("", nil) when no token has been persisted
// - Save replaces any prior token
// - Clear is a no-op when nothing is persisted
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// TokenSource exposes the current session token to the HTTP gateway.
// Implemented by the session store; the gateway attaches the bearer header
// only when ok is true.
type TokenSource interface {
	Token() (token string, ok bool)
}

// OrderService is the remote order aggregate.
//
// Error Contract:
// - Get returns ErrNotFound for an unknown id
// - All operations return ErrUnauthorized on a rejected token
// - All operations return ErrRemoteUnavailable on network failure or 5xx
type OrderService interface {
	List(ctx context.Context, page, size int) (domain.Page[domain.Order], error)
	Get(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// DeliveryService is the remote delivery aggregate.
//
// Error Contract: same as OrderService.
type DeliveryService interface {
	List(ctx context.Context, page, size int) (domain.Page[domain.Delivery], error)
	Get(ctx context.Context, id string, includeTracking bool) (domain.Delivery, error)
	Create(ctx context.Context, orderID string, req domain.CreateDeliveryRequest) (domain.Delivery, error)
	UpdateStatus(ctx context.Context, id string, status domain.DeliveryStatus) (domain.Delivery, error)
	Assign(ctx context.Context, id string, deliveryPersonID string) (domain.Delivery, error)
}

// AddressLookup resolves a normalized postal code to a structured address.
// Caching of repeated lookups is delegated to the remote side; the console
// performs no local caching.
//
// Error Contract:
// - Returns ErrNotFound for an unknown postal code
// - Returns ErrRemoteUnavailable on network failure or 5xx
type AddressLookup interface {
	ByZip(ctx context.Context, zip string) (domain.Address, error)
}

// AuthUser is the profile payload returned by the authentication endpoints.
type AuthUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Token   string `json:"token,omitempty"`
}

// AuthGateway is the remote authentication surface.
//
// Error Contract:
// - LoginSuccess returns ErrUnauthorized when the cookie-backed probe is
//   rejected; a resolved AuthUser may still carry an empty Token, which the
//   bootstrap flow treats as a failure
// - Logout is best-effort; failures are logged, not surfaced
type AuthGateway interface {
	// LoginSuccess probes the cookie-backed login-success endpoint.
	// cookieHeader is the caller's raw Cookie header, forwarded opaquely.
	LoginSuccess(ctx context.Context, cookieHeader string) (AuthUser, error)

	// CurrentUser fetches the authenticated profile for the current token.
	CurrentUser(ctx context.Context) (AuthUser, error)

	// Logout invalidates the remote session.
	Logout(ctx context.Context) error

	// OAuthEntryURL returns the provider-hosted authorization endpoint the
	// login page links to. Not itself implemented by this system.
	OAuthEntryURL() string
}
