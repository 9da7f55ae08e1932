package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloro/deliverydesk/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), false)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultRequestTimeout, cfg.API.Timeout)
	assert.Equal(t, config.DefaultListenAddr, cfg.Listen.Addr)
	assert.Equal(t, config.DefaultLookupDebounce, cfg.Lookup.Debounce)
	assert.False(t, cfg.Auth.DevLogin)
	assert.NotEmpty(t, cfg.Storage.TokenPath, "a per-user default path is resolved")
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://api.example.com/api
  timeout: 3s
listen:
  addr: ":9090"
storage:
  token_path: /tmp/dd-token
lookup:
  debounce: 250ms
auth:
  dev_login: true
`)

	cfg, err := config.Load(path, true)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, ":9090", cfg.Listen.Addr)
	assert.Equal(t, "/tmp/dd-token", cfg.Storage.TokenPath)
	assert.Equal(t, 250*time.Millisecond, cfg.Lookup.Debounce)
	assert.True(t, cfg.Auth.DevLogin)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
listen:
  addr: ":9191"
`)

	cfg, err := config.Load(path, true)

	require.NoError(t, err)
	assert.Equal(t, ":9191", cfg.Listen.Addr)
	assert.Equal(t, config.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultRequestTimeout, cfg.API.Timeout)
	assert.Equal(t, config.DefaultLookupDebounce, cfg.Lookup.Debounce)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://file.example.com/api
`)
	t.Setenv(config.EnvAPIBaseURL, "https://env.example.com/api")
	t.Setenv(config.EnvListenAddr, ":7777")
	t.Setenv(config.EnvTokenPath, "/tmp/env-token")
	t.Setenv(config.EnvDevLogin, "true")

	cfg, err := config.Load(path, true)

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, ":7777", cfg.Listen.Addr)
	assert.Equal(t, "/tmp/env-token", cfg.Storage.TokenPath)
	assert.True(t, cfg.Auth.DevLogin)
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
api:
  timeout: soon
`)

	_, err := config.Load(path, true)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{name: "missing base url", mutate: func(c *config.Config) { c.API.BaseURL = "" }, wantErr: true},
		{name: "non-http base url", mutate: func(c *config.Config) { c.API.BaseURL = "ftp://api" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *config.Config) { c.API.Timeout = 0 }, wantErr: true},
		{name: "missing listen addr", mutate: func(c *config.Config) { c.Listen.Addr = "" }, wantErr: true},
		{name: "zero debounce", mutate: func(c *config.Config) { c.Lookup.Debounce = 0 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAPIConfig_OAuthEntryURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base string
		want string
	}{
		{base: "http://localhost:8080/api", want: "http://localhost:8080/oauth2/authorization/google"},
		{base: "http://localhost:8080/api/", want: "http://localhost:8080/oauth2/authorization/google"},
		{base: "https://delivery.example.com", want: "https://delivery.example.com/oauth2/authorization/google"},
	}

	for _, tc := range cases {
		got := config.APIConfig{BaseURL: tc.base}.OAuthEntryURL()
		assert.Equal(t, tc.want, got, "base %q", tc.base)
	}
}
