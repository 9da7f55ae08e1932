// Package config loads and validates the console configuration from an
// optional YAML file plus environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied before file and environment values.
const (
	DefaultAPIBaseURL     = "http://localhost:8080/api"
	DefaultListenAddr     = ":7180"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLookupDebounce = 500 * time.Millisecond
)

// Config is the fully resolved console configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Listen  ListenConfig  `yaml:"listen"`
	Storage StorageConfig `yaml:"storage"`
	Lookup  LookupConfig  `yaml:"lookup"`
	Auth    AuthConfig    `yaml:"auth"`
}

// APIConfig locates the remote delivery API.
type APIConfig struct {
	// BaseURL is the API root, including the /api prefix.
	BaseURL string `yaml:"base_url"`
	// Timeout is the fixed per-request timeout of the HTTP gateway.
	Timeout time.Duration `yaml:"timeout"`
}

// ListenConfig configures the console's own HTTP listener.
type ListenConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig locates durable client state.
type StorageConfig struct {
	// TokenPath is the file holding the persisted bearer token.
	// Empty selects a per-user default under the OS state directory.
	TokenPath string `yaml:"token_path"`
}

// LookupConfig tunes the postal-code autocomplete flow.
type LookupConfig struct {
	// Debounce is the quiet period before a settled input fires a lookup.
	Debounce time.Duration `yaml:"debounce"`
}

// AuthConfig tunes the authentication surface.
type AuthConfig struct {
	// DevLogin enables the development credentials form stub.
	DevLogin bool `yaml:"dev_login"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultRequestTimeout,
		},
		Listen: ListenConfig{Addr: DefaultListenAddr},
		Lookup: LookupConfig{Debounce: DefaultLookupDebounce},
	}
}

// OAuthEntryURL derives the provider-hosted authorization endpoint from the
// API base URL by dropping the /api prefix.
func (c APIConfig) OAuthEntryURL() string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	base = strings.TrimSuffix(base, "/api")
	return base + "/oauth2/authorization/google"
}

// Validate checks the resolved configuration for values the console cannot
// run with.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0")
	}
	if c.Listen.Addr == "" {
		return fmt.Errorf("listen.addr is required")
	}
	if c.Lookup.Debounce <= 0 {
		return fmt.Errorf("lookup.debounce must be > 0")
	}
	return nil
}
