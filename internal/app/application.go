package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veloro/deliverydesk/internal/config"
	"github.com/veloro/deliverydesk/internal/ports"
)

// lookupFlowMaxIdle is how long an abandoned form's debounce flow is kept
// before the registry prunes it.
const lookupFlowMaxIdle = 15 * time.Minute

// Services bundles the outbound service ports built against the remote API.
type Services struct {
	Orders     ports.OrderService
	Deliveries ports.DeliveryService
	Addresses  ports.AddressLookup
	Auth       ports.AuthGateway
}

// Deps are the dependencies Bootstrap wires into an Application.
//
// BuildServices exists because the service adapters need the session as
// their token source, and the session needs the token store first - the
// factory closes that loop without the app layer importing any adapter.
type Deps struct {
	TokenStore    ports.TokenStore
	BuildServices func(tokens ports.TokenSource) Services
	Logger        *slog.Logger
}

// Application is the wired console: every flow the inbound adapters drive.
type Application struct {
	Config     config.Config
	Session    *Session
	Auth       *AuthFlow
	Orders     *OrderFlow
	Deliveries *DeliveryFlow
	Lookups    *LookupRegistry
	Log        *slog.Logger
}

// Bootstrap wires the application:
//   - seeds the session from the token store
//   - builds the remote services with the session as token source
//   - assembles the flows
func Bootstrap(cfg config.Config, deps Deps) (*Application, error) {
	if deps.TokenStore == nil {
		return nil, fmt.Errorf("token store is nil")
	}
	if deps.BuildServices == nil {
		return nil, fmt.Errorf("service factory is nil")
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	session, err := NewSession(deps.TokenStore)
	if err != nil {
		return nil, fmt.Errorf("seed session: %w", err)
	}

	services := deps.BuildServices(session)
	if services.Orders == nil || services.Deliveries == nil || services.Addresses == nil || services.Auth == nil {
		return nil, fmt.Errorf("service factory returned a nil service")
	}

	lookups := NewLookupRegistry(func() *LookupFlow {
		return NewLookupFlow(services.Addresses, cfg.Lookup.Debounce, log)
	}, lookupFlowMaxIdle)

	return &Application{
		Config:     cfg,
		Session:    session,
		Auth:       NewAuthFlow(session, services.Auth, log),
		Orders:     NewOrderFlow(services.Orders, log),
		Deliveries: NewDeliveryFlow(services.Deliveries, log),
		Lookups:    lookups,
		Log:        log,
	}, nil
}
