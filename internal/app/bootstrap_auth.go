package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/veloro/deliverydesk/internal/ports"
)

// Delays before the scheduled redirect to the login destination on the two
// failure paths of the callback flow.
const (
	errorParamRedirectDelay  = 2 * time.Second
	probeFailedRedirectDelay = 3 * time.Second
)

// ErrInvalidCredentials indicates the development login form was submitted
// with anything but the stub credentials.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CallbackParams are the query parameters of the authentication callback,
// plus the caller's raw Cookie header for the credentialed probe.
type CallbackParams struct {
	Error string
	Token string
	Name  string

	// CookieHeader is forwarded opaquely to the login-success probe.
	CookieHeader string
}

// CallbackState names the terminal states of the callback state machine.
type CallbackState int

const (
	// CallbackFailed: error param present, or the probe resolved without a
	// token or rejected. A redirect to login is scheduled after Delay.
	CallbackFailed CallbackState = iota
	// CallbackLoggedIn: a token arrived (directly or via the probe) and the
	// session now holds it. Navigation to the orders list follows.
	CallbackLoggedIn
	// CallbackAbandoned: the probe raced with teardown; nothing was mutated
	// and nothing is surfaced for the stale response.
	CallbackAbandoned
)

// CallbackResult is the outcome of one callback evaluation.
type CallbackResult struct {
	State    CallbackState
	Notice   Notice
	Redirect Destination
	// Delay is the scheduled wait before Redirect on failure paths; zero on
	// the logged-in path.
	Delay time.Duration
}

// AuthFlow is the authentication bootstrap state machine. It reconciles the
// three entry paths into a single "operator is logged in with token T"
// outcome, evaluated in fixed priority order: error param, token param,
// cookie-backed probe.
type AuthFlow struct {
	session *Session
	gateway ports.AuthGateway
	log     *slog.Logger
}

// NewAuthFlow creates the bootstrap flow.
func NewAuthFlow(session *Session, gateway ports.AuthGateway, log *slog.Logger) *AuthFlow {
	return &AuthFlow{session: session, gateway: gateway, log: log}
}

// HandleCallback runs the state machine once. There is no retry of the probe.
func (f *AuthFlow) HandleCallback(ctx context.Context, p CallbackParams) CallbackResult {
	if p.Error != "" {
		f.log.Warn("oauth callback carried error param", "error", p.Error)
		return CallbackResult{
			State:    CallbackFailed,
			Notice:   Notice{Level: NoticeError, Message: "Erro ao fazer login com Google"},
			Redirect: DestinationLogin,
			Delay:    errorParamRedirectDelay,
		}
	}

	if p.Token != "" {
		return f.loggedIn(p.Token, p.Name)
	}

	// Neither param present: probe the cookie-backed login-success endpoint.
	user, err := f.gateway.LoginSuccess(ctx, p.CookieHeader)
	if ctx.Err() != nil {
		// Navigation away cancelled the probe; drop the stale response silently.
		return CallbackResult{State: CallbackAbandoned}
	}
	if err != nil || user.Token == "" {
		if err != nil {
			f.log.Error("login-success probe failed", "err", err)
		} else {
			f.log.Error("login-success probe resolved without a token")
		}
		return CallbackResult{
			State:    CallbackFailed,
			Notice:   Notice{Level: NoticeError, Message: "Erro ao processar autenticação"},
			Redirect: DestinationLogin,
			Delay:    probeFailedRedirectDelay,
		}
	}

	return f.loggedIn(user.Token, user.Name)
}

func (f *AuthFlow) loggedIn(token, name string) CallbackResult {
	if err := f.session.Login(token); err != nil {
		f.log.Error("session login failed", "err", err)
		return CallbackResult{
			State:    CallbackFailed,
			Notice:   Notice{Level: NoticeError, Message: "Erro ao processar autenticação"},
			Redirect: DestinationLogin,
			Delay:    probeFailedRedirectDelay,
		}
	}
	message := "Login realizado com sucesso!"
	if name != "" {
		message = fmt.Sprintf("Bem-vindo, %s!", name)
	}
	return CallbackResult{
		State:    CallbackLoggedIn,
		Notice:   Notice{Level: NoticeSuccess, Message: message},
		Redirect: DestinationOrders,
	}
}

// DevLogin is the development credentials stub recovered from the original
// login form: a fixed email/password pair resolves to a fake token after a
// short artificial wait. Enabled only by the auth.dev_login config flag.
func (f *AuthFlow) DevLogin(ctx context.Context, email, password string) error {
	select {
	case <-time.After(800 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	if email != "admin@admin.com" || password != "123456" {
		return ErrInvalidCredentials
	}
	return f.session.Login("fake-jwt-token-123456")
}

// Profile fetches the authenticated operator's profile from the remote API.
func (f *AuthFlow) Profile(ctx context.Context) (ports.AuthUser, error) {
	return f.gateway.CurrentUser(ctx)
}

// Logout invalidates the remote session best-effort, then clears the local
// session. A remote failure is logged, never surfaced: the operator always
// ends up logged out locally.
func (f *AuthFlow) Logout(ctx context.Context) error {
	if err := f.gateway.Logout(ctx); err != nil {
		f.log.Warn("remote logout failed", "err", err)
	}
	return f.session.Logout()
}
