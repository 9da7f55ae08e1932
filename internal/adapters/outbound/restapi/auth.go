package restapi

import (
	"context"

	"github.com/veloro/deliverydesk/internal/ports"
)

// Auth implements ports.AuthGateway against the remote API.
type Auth struct {
	client   *Client
	oauthURL string
}

// NewAuth creates the auth gateway adapter. oauthURL is the provider-hosted
// authorization endpoint the login page links to.
func NewAuth(client *Client, oauthURL string) *Auth {
	return &Auth{client: client, oauthURL: oauthURL}
}

// LoginSuccess probes the cookie-backed login-success endpoint. The caller's
// Cookie header is forwarded opaquely; the bearer header is attached as usual
// when a token is already present.
func (a *Auth) LoginSuccess(ctx context.Context, cookieHeader string) (ports.AuthUser, error) {
	var user ports.AuthUser
	opts := []requestOption{}
	if cookieHeader != "" {
		opts = append(opts, withHeader("Cookie", cookieHeader))
	}
	err := a.client.get(ctx, "/auth/login-success", &user, opts...)
	return user, err
}

func (a *Auth) CurrentUser(ctx context.Context) (ports.AuthUser, error) {
	var user ports.AuthUser
	err := a.client.get(ctx, "/auth/user", &user)
	return user, err
}

func (a *Auth) Logout(ctx context.Context) error {
	return a.client.post(ctx, "/auth/logout", nil, nil)
}

func (a *Auth) OAuthEntryURL() string {
	return a.oauthURL
}

var _ ports.AuthGateway = (*Auth)(nil)
