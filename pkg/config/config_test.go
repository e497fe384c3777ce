package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "privat-rates", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "https://api.privatbank.ua/p24api/exchange_rates", cfg.PrivatBank.URL)
	assert.Equal(t, 30*time.Second, cfg.PrivatBank.Timeout)
	assert.Equal(t, []string{"EUR", "USD"}, cfg.Rates.Currencies)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
privatbank:
  url: http://localhost:9999/rates
  timeout: 2s
rates:
  currencies: [GBP, CHF]
server:
  port: "9090"
  allow_origins: ["http://example.com"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://localhost:9999/rates", cfg.PrivatBank.URL)
	assert.Equal(t, 2*time.Second, cfg.PrivatBank.Timeout)
	assert.Equal(t, []string{"GBP", "CHF"}, cfg.Rates.Currencies)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://example.com"}, cfg.Server.AllowOrigins)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PRIVATBANK_URL", "http://env.example/rates")

	cfg, err := LoadConfig(writeFile(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "http://env.example/rates", cfg.PrivatBank.URL)
}

func TestLoadConfig_BadFile(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "log: [unclosed"))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{}
	cfg.PrivatBank.URL = "not a url"
	cfg.PrivatBank.Timeout = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
	assert.ErrorContains(t, err, "privatbank.url")
	assert.ErrorContains(t, err, "rates.currencies must not be empty")
}
