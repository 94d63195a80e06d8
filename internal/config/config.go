// Package config loads service configuration from environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/duskmantle/advancement-api/internal/errors"
)

// Config holds the service configuration
type Config struct {
	// RedisAddr is the host:port of the Redis backing store
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// SessionTTL bounds how long an abandoned wizard session survives
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level onto slog's levels
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.InvalidArgumentf("unknown log level: %s", c.LogLevel)
	}
}
