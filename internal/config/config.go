package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port    string `env:"WEBSITE_PORT" envDefault:"4002"`
	Address string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`

	// Deployment name. The logger reads the same key (and LOG_LEVEL) on
	// its own since it is built before the configuration.
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// SEO backend
	API APIConfig

	// Throttling of form posts (signup, dashboard actions)
	RateLimit RateLimitConfig

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// APIConfig points the website at the SEO backend
type APIConfig struct {
	BaseURL string        `env:"SEO_API_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"SEO_API_TIMEOUT" envDefault:"30s"`

	// Customer whose dashboard is shown. There is no login yet, so every
	// visitor sees the same customer.
	CustomerID int64 `env:"SEO_CUSTOMER_ID" envDefault:"1"`
}

// RateLimitConfig is a per-client token bucket
type RateLimitConfig struct {
	PerMinute int `env:"SIGNUP_RATE_PER_MINUTE" envDefault:"10"`
	Burst     int `env:"SIGNUP_RATE_BURST" envDefault:"5"`
}

// Enabled reports whether POST throttling is active
func (r RateLimitConfig) Enabled() bool {
	return r.PerMinute > 0
}

// Addr returns the listen address, e.g. "0.0.0.0:4002"
func (c *Config) Addr() string {
	port := strings.TrimPrefix(c.Port, ":")
	return fmt.Sprintf("%s:%s", c.Address, port)
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("SEO_API_URL must not be empty")
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("address", cfg.Addr()),
		slog.String("seo_api_url", cfg.API.BaseURL),
		slog.Int64("customer_id", cfg.API.CustomerID),
	)

	return cfg, nil
}
