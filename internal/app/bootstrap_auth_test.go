package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloro/deliverydesk/internal/app"
	"github.com/veloro/deliverydesk/internal/ports"
)

// fakeAuthGateway scripts the login-success probe.
type fakeAuthGateway struct {
	user       ports.AuthUser
	probeErr   error
	profileErr error
	gotCookie string
	probes    int
	logouts   int
	// cancel, when set, is invoked before the probe returns to simulate the
	// caller tearing down mid-flight.
	cancel context.CancelFunc
}

func (g *fakeAuthGateway) LoginSuccess(_ context.Context, cookieHeader string) (ports.AuthUser, error) {
	g.probes++
	g.gotCookie = cookieHeader
	if g.cancel != nil {
		g.cancel()
	}
	return g.user, g.probeErr
}

func (g *fakeAuthGateway) CurrentUser(context.Context) (ports.AuthUser, error) {
	return g.user, g.profileErr
}

func (g *fakeAuthGateway) Logout(context.Context) error {
	g.logouts++
	return nil
}

func (g *fakeAuthGateway) OAuthEntryURL() string { return "http://localhost:8080/oauth2/authorization/google" }

func newAuthFixture(t *testing.T, gateway *fakeAuthGateway) (*app.AuthFlow, *app.Session) {
	t.Helper()
	session, err := app.NewSession(&memTokenStore{})
	require.NoError(t, err)
	return app.NewAuthFlow(session, gateway, slog.Default()), session
}

func TestAuthFlow_ErrorParam(t *testing.T) {
	t.Parallel()

	gateway := &fakeAuthGateway{}
	flow, session := newAuthFixture(t, gateway)

	result := flow.HandleCallback(context.Background(), app.CallbackParams{Error: "access_denied"})

	assert.Equal(t, app.CallbackFailed, result.State)
	assert.Equal(t, app.NoticeError, result.Notice.Level)
	assert.Equal(t, app.DestinationLogin, result.Redirect)
	assert.Equal(t, 2*time.Second, result.Delay)
	// The error path never touches the probe or the session.
	assert.Zero(t, gateway.probes)
	assert.False(t, session.Authenticated())
}

func TestAuthFlow_TokenParam(t *testing.T) {
	t.Parallel()

	t.Run("with name", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{}
		flow, session := newAuthFixture(t, gateway)

		result := flow.HandleCallback(context.Background(), app.CallbackParams{Token: "abc", Name: "Jane"})

		assert.Equal(t, app.CallbackLoggedIn, result.State)
		assert.Equal(t, app.NoticeSuccess, result.Notice.Level)
		assert.Contains(t, result.Notice.Message, "Jane")
		assert.Equal(t, app.DestinationOrders, result.Redirect)
		assert.Zero(t, result.Delay)
		assert.Zero(t, gateway.probes, "a direct token never probes")

		state := session.State()
		assert.Equal(t, "abc", state.Token)
		assert.True(t, state.Authenticated)
	})

	t.Run("without name falls back to the generic welcome", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{}
		flow, _ := newAuthFixture(t, gateway)

		result := flow.HandleCallback(context.Background(), app.CallbackParams{Token: "abc"})
		assert.Equal(t, app.CallbackLoggedIn, result.State)
		assert.Equal(t, "Login realizado com sucesso!", result.Notice.Message)
	})

	t.Run("takes priority over the error-free probe", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{user: ports.AuthUser{Token: "from-probe"}}
		flow, session := newAuthFixture(t, gateway)

		flow.HandleCallback(context.Background(), app.CallbackParams{Token: "direct"})
		token, _ := session.Token()
		assert.Equal(t, "direct", token)
		assert.Zero(t, gateway.probes)
	})
}

func TestAuthFlow_Probe(t *testing.T) {
	t.Parallel()

	t.Run("resolves with a token", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{user: ports.AuthUser{Name: "Maria", Token: "probe-token"}}
		flow, session := newAuthFixture(t, gateway)

		result := flow.HandleCallback(context.Background(), app.CallbackParams{CookieHeader: "JSESSIONID=xyz"})

		assert.Equal(t, app.CallbackLoggedIn, result.State)
		assert.Contains(t, result.Notice.Message, "Maria")
		assert.Equal(t, app.DestinationOrders, result.Redirect)
		assert.Equal(t, "JSESSIONID=xyz", gateway.gotCookie, "cookie header is forwarded opaquely")

		token, _ := session.Token()
		assert.Equal(t, "probe-token", token)
	})

	t.Run("resolves without a token", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{user: ports.AuthUser{Name: "Maria"}}
		flow, session := newAuthFixture(t, gateway)

		result := flow.HandleCallback(context.Background(), app.CallbackParams{})

		assert.Equal(t, app.CallbackFailed, result.State)
		assert.Equal(t, 3*time.Second, result.Delay)
		assert.Equal(t, app.DestinationLogin, result.Redirect)
		assert.False(t, session.Authenticated())
	})

	t.Run("rejects", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{probeErr: ports.ErrUnauthorized}
		flow, session := newAuthFixture(t, gateway)

		result := flow.HandleCallback(context.Background(), app.CallbackParams{})

		assert.Equal(t, app.CallbackFailed, result.State)
		assert.Equal(t, 3*time.Second, result.Delay)
		assert.False(t, session.Authenticated())
		assert.Equal(t, 1, gateway.probes, "the probe is never retried")
	})

	t.Run("racing teardown is silent", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		gateway := &fakeAuthGateway{user: ports.AuthUser{Token: "late"}, cancel: cancel}
		flow, session := newAuthFixture(t, gateway)

		result := flow.HandleCallback(ctx, app.CallbackParams{})

		assert.Equal(t, app.CallbackAbandoned, result.State)
		assert.Empty(t, result.Notice.Message, "no error is surfaced for a stale response")
		assert.False(t, session.Authenticated(), "a stale token is never applied")
	})
}

func TestAuthFlow_DevLogin(t *testing.T) {
	t.Parallel()

	gateway := &fakeAuthGateway{}
	flow, session := newAuthFixture(t, gateway)

	err := flow.DevLogin(context.Background(), "admin@admin.com", "wrong")
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)
	assert.False(t, session.Authenticated())

	require.NoError(t, flow.DevLogin(context.Background(), "admin@admin.com", "123456"))
	token, _ := session.Token()
	assert.Equal(t, "fake-jwt-token-123456", token)
}

func TestAuthFlow_Profile(t *testing.T) {
	t.Parallel()

	t.Run("returns the remote profile", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{user: ports.AuthUser{Name: "Jane", Email: "jane@example.com"}}
		flow, _ := newAuthFixture(t, gateway)

		user, err := flow.Profile(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("surfaces gateway failures", func(t *testing.T) {
		t.Parallel()
		gateway := &fakeAuthGateway{profileErr: ports.ErrUnauthorized}
		flow, _ := newAuthFixture(t, gateway)

		_, err := flow.Profile(context.Background())
		assert.ErrorIs(t, err, ports.ErrUnauthorized)
	})
}

func TestAuthFlow_Logout(t *testing.T) {
	t.Parallel()

	gateway := &fakeAuthGateway{}
	flow, session := newAuthFixture(t, gateway)
	require.NoError(t, session.Login("t-1"))

	require.NoError(t, flow.Logout(context.Background()))
	assert.False(t, session.Authenticated())
	assert.Equal(t, 1, gateway.logouts)
}
