// Package config loads runevault configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings. Command-line flags override them.
type Config struct {
	// DBPath is the SQLite file for the level cache and payout ledger.
	// Empty disables persistence.
	DBPath   string `env:"RUNEVAULT_DB_PATH"`
	Width    int    `env:"RUNEVAULT_WIDTH" envDefault:"21"`
	Height   int    `env:"RUNEVAULT_HEIGHT" envDefault:"21"`
	LogLevel string `env:"RUNEVAULT_LOG_LEVEL" envDefault:"info"`
	// ComboCap limits the combo multiplier; 0 leaves it unbounded.
	ComboCap int `env:"RUNEVAULT_COMBO_CAP" envDefault:"0"`

	OTelEnabled  bool   `env:"RUNEVAULT_OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint string `env:"RUNEVAULT_OTEL_ENDPOINT"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ComboCap < 0 {
		return Config{}, fmt.Errorf("RUNEVAULT_COMBO_CAP must be >= 0, got %d", cfg.ComboCap)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// TracingEnabled reports whether spans should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTelEnabled && strings.TrimSpace(c.OTelEndpoint) != ""
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
