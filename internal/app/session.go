package app

import (
	"fmt"
	"sync"

	"github.com/veloro/deliverydesk/internal/ports"
)

// SessionState is a read-only snapshot of the authentication state.
// Invariant: Authenticated == (Token != "").
type SessionState struct {
	Token         string
	Authenticated bool
}

// Session is the process-wide session store: the in-memory authentication
// state backed by durable token storage. It is an explicit dependency passed
// to the HTTP gateway and the route guard, not an ambient singleton.
//
// Reads and writes are atomic, last writer wins. The initial state is derived
// by reading the store once at construction; no background refresh or expiry
// check is performed - an expired-but-present token is treated as valid until
// the remote API rejects it.
type Session struct {
	mu    sync.RWMutex
	store ports.TokenStore
	token string
}

// NewSession creates the session store, seeding it from durable storage.
func NewSession(store ports.TokenStore) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load persisted token: %w", err)
	}
	return &Session{store: store, token: token}, nil
}

// Login persists the token and marks the session authenticated.
// Idempotent - replaces any prior token. On a storage failure the in-memory
// state is left untouched.
func (s *Session) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.token = token
	return nil
}

// Logout clears both the durable and the in-memory state. The in-memory
// token is dropped even when clearing storage fails, so the operator is
// always logged out of the running process.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear persisted token: %w", err)
	}
	return nil
}

// Token returns the current token and whether one is present.
// Implements ports.TokenSource for the HTTP gateway.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// State returns a consistent snapshot of the session.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{Token: s.token, Authenticated: s.token != ""}
}

var _ ports.TokenSource = (*Session)(nil)
