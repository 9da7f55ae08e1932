// Package web is the browser-facing console: a chi router serving
// server-rendered views over the application flows.
//
// The package owns no business logic. Handlers parse form input, drive one
// flow, translate its outcome into a flash notice plus a redirect or a
// rendered page, and nothing else. Every failure path leaves the console in a
// navigable, re-enterable state.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/veloro/deliverydesk/internal/app"
)

// Routes of the console. Flows navigate by logical destination; this is the
// single place destinations become paths.
const (
	pathLogin      = "/login"
	pathCallback   = "/auth/callback"
	pathLogout     = "/logout"
	pathProfile    = "/profile"
	pathOrders     = "/orders"
	pathDeliveries = "/deliveries"
	pathLookup     = "/api/lookup/address"
)

// Server is the inbound HTTP adapter.
type Server struct {
	app       *app.Application
	router    chi.Router
	templates *templateSet
	log       *slog.Logger
}

// NewServer builds the router and parses the embedded templates.
func NewServer(application *app.Application) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		app:       application,
		templates: templates,
		log:       application.Log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// Public surface: login and the authentication callback.
	r.Get(pathLogin, s.handleLoginPage)
	r.Post(pathLogin, s.handleDevLogin)
	r.Get(pathCallback, s.handleCallback)

	// Everything else sits behind the route guard.
	r.Group(func(r chi.Router) {
		r.Use(s.guard)

		r.Post(pathLogout, s.handleLogout)
		r.Get(pathProfile, s.handleProfile)

		r.Get(pathOrders, s.handleOrderList)
		r.Get(pathOrders+"/new", s.handleOrderNew)
		r.Post(pathOrders, s.handleOrderCreate)
		r.Get(pathOrders+"/{id}", s.handleOrderDetail)
		r.Post(pathOrders+"/{id}/status", s.handleOrderStatus)
		r.Get(pathOrders+"/{id}/delete", s.handleOrderDeleteConfirm)
		r.Post(pathOrders+"/{id}/delete", s.handleOrderDelete)

		r.Get(pathDeliveries, s.handleDeliveryList)
		r.Get(pathDeliveries+"/new", s.handleDeliveryNew)
		r.Post(pathDeliveries, s.handleDeliveryCreate)
		r.Get(pathDeliveries+"/{id}", s.handleDeliveryDetail)
		r.Post(pathDeliveries+"/{id}/status", s.handleDeliveryStatus)
		r.Post(pathDeliveries+"/{id}/assign", s.handleDeliveryAssign)

		r.Get(pathLookup, s.handleAddressLookup)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, pathOrders, http.StatusFound)
	})

	s.router = r
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// destPath maps a flow's logical destination to a route.
func destPath(d app.Destination) string {
	switch d {
	case app.DestinationOrders:
		return pathOrders
	default:
		return pathLogin
	}
}

// requestLogger logs one line per request with the chi request id.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// guard redirects unauthenticated requests to the login page. The session is
// an injected dependency; an expired-but-present token passes here and fails
// at the remote API instead.
func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.app.Session.Authenticated() {
			http.Redirect(w, r, pathLogin, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
