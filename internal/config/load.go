package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized on top of the file configuration.
// DELIVERYDESK_API_URL mirrors the original deployment's single base-URL
// variable; the rest follow the same prefix.
const (
	EnvAPIBaseURL = "DELIVERYDESK_API_URL"
	EnvListenAddr = "DELIVERYDESK_LISTEN_ADDR"
	EnvTokenPath  = "DELIVERYDESK_TOKEN_PATH"
	EnvDevLogin   = "DELIVERYDESK_DEV_LOGIN"
)

// Load resolves the configuration: defaults, then the optional YAML file,
// then environment overrides. A missing file at the default path is not an
// error; an explicitly given path must exist.
func Load(path string, explicit bool) (Config, error) {
	// A .env file in the working directory seeds the environment, matching
	// the original deployment convention. Absence is fine.
	_ = godotenv.Load()

	cfg := Default()

	// Clean the path to prevent directory traversal from templated configs
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - config path is operator-supplied
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// fall through to defaults
	default:
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(&cfg)

	if cfg.Storage.TokenPath == "" {
		cfg.Storage.TokenPath = defaultTokenPath()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Listen.Addr = v
	}
	if v := os.Getenv(EnvTokenPath); v != "" {
		cfg.Storage.TokenPath = v
	}
	if v := os.Getenv(EnvDevLogin); v == "1" || v == "true" {
		cfg.Auth.DevLogin = true
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "deliverydesk", "token")
}

// UnmarshalYAML accepts durations as strings ("10s") or bare seconds,
// keeping hand-written config files forgiving.
func (c *APIConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	if r.BaseURL != "" {
		c.BaseURL = r.BaseURL
	}
	if r.Timeout != "" {
		d, err := time.ParseDuration(r.Timeout)
		if err != nil {
			return fmt.Errorf("api.timeout: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// UnmarshalYAML parses the debounce duration from its string form.
func (c *LookupConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Debounce string `yaml:"debounce"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	if r.Debounce != "" {
		d, err := time.ParseDuration(r.Debounce)
		if err != nil {
			return fmt.Errorf("lookup.debounce: %w", err)
		}
		c.Debounce = d
	}
	return nil
}
