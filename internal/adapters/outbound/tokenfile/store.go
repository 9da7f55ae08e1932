// Package tokenfile persists the single bearer token to a file, the console's
// analogue of the browser's well-known local-storage key. The token survives
// restarts until explicit logout.
package tokenfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/veloro/deliverydesk/internal/ports"
)

// Store reads and writes the token file. The file holds nothing but the
// token; permissions are owner-only.
type Store struct {
	path string
}

// New creates a store for the given path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("token path is required")
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// Load returns the persisted token, or "" when none exists.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save replaces any prior token. The parent directory is created on demand.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the token file; a missing file is fine.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

var _ ports.TokenStore = (*Store)(nil)
