package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "4002", cfg.Port)
	assert.Equal(t, "0.0.0.0:4002", cfg.Addr())
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, int64(1), cfg.API.CustomerID)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, "local", cfg.Environment)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("WEBSITE_PORT", ":8080")
	t.Setenv("WEBSITE_ADDRESS", "127.0.0.1")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEO_API_URL", "https://api.swedensai.se/")
	t.Setenv("SEO_API_TIMEOUT", "5s")
	t.Setenv("SEO_CUSTOMER_ID", "42")
	t.Setenv("SIGNUP_RATE_PER_MINUTE", "0")

	cfg, err := NewConfig(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "https://api.swedensai.se", cfg.API.BaseURL, "trailing slash should be trimmed")
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, int64(42), cfg.API.CustomerID)
	assert.False(t, cfg.RateLimit.Enabled())
	assert.Equal(t, "production", cfg.Environment)
}

func TestNewConfig_InvalidValue(t *testing.T) {
	t.Setenv("SEO_CUSTOMER_ID", "not-a-number")

	_, err := NewConfig(testLogger())
	assert.Error(t, err)
}

func TestNewConfig_EmptyAPIURL(t *testing.T) {
	t.Setenv("SEO_API_URL", "/")

	_, err := NewConfig(testLogger())
	assert.Error(t, err)
}
