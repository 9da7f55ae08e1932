package app_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloro/deliverydesk/internal/app"
)

// memTokenStore is an in-memory ports.TokenStore for flow tests.
type memTokenStore struct {
	mu       sync.Mutex
	token    string
	loadErr  error
	saveErr  error
	clearErr error
}

func (s *memTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.loadErr
}

func (s *memTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *memTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token = ""
	return nil
}

func (s *memTokenStore) stored() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func TestSession_LoginLogout(t *testing.T) {
	t.Parallel()

	store := &memTokenStore{}
	session, err := app.NewSession(store)
	require.NoError(t, err)

	// Fresh process, nothing persisted.
	state := session.State()
	assert.Empty(t, state.Token)
	assert.False(t, state.Authenticated)

	require.NoError(t, session.Login("t-123"))
	state = session.State()
	assert.Equal(t, "t-123", state.Token)
	assert.True(t, state.Authenticated)
	assert.Equal(t, "t-123", store.stored(), "persisted storage must reflect the session")

	// Idempotent: a second login replaces the prior token.
	require.NoError(t, session.Login("t-456"))
	token, ok := session.Token()
	assert.True(t, ok)
	assert.Equal(t, "t-456", token)
	assert.Equal(t, "t-456", store.stored())

	require.NoError(t, session.Logout())
	state = session.State()
	assert.Empty(t, state.Token)
	assert.False(t, state.Authenticated)
	assert.Empty(t, store.stored())
}

func TestSession_SeededFromStorage(t *testing.T) {
	t.Parallel()

	// An expired-but-present token still seeds an authenticated session;
	// only the remote API decides it is stale.
	store := &memTokenStore{token: "persisted"}
	session, err := app.NewSession(store)
	require.NoError(t, err)
	assert.True(t, session.Authenticated())

	token, ok := session.Token()
	assert.True(t, ok)
	assert.Equal(t, "persisted", token)
}

func TestSession_StorageFailures(t *testing.T) {
	t.Parallel()

	t.Run("load failure surfaces at construction", func(t *testing.T) {
		t.Parallel()
		store := &memTokenStore{loadErr: errors.New("disk gone")}
		_, err := app.NewSession(store)
		require.Error(t, err)
	})

	t.Run("save failure leaves memory untouched", func(t *testing.T) {
		t.Parallel()
		store := &memTokenStore{saveErr: errors.New("disk full")}
		session, err := app.NewSession(store)
		require.NoError(t, err)

		require.Error(t, session.Login("t-1"))
		assert.False(t, session.Authenticated())
	})

	t.Run("clear failure still logs the process out", func(t *testing.T) {
		t.Parallel()
		store := &memTokenStore{token: "t-1", clearErr: errors.New("perm denied")}
		session, err := app.NewSession(store)
		require.NoError(t, err)
		require.True(t, session.Authenticated())

		require.Error(t, session.Logout())
		assert.False(t, session.Authenticated())
	})
}
