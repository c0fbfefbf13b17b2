// Package config reads runtime settings for foreman from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds process-wide settings. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// FixturesPath replaces the embedded seed data when set.
	FixturesPath string
	// LogFile receives service use-case logs. Empty disables logging since
	// the terminal belongs to the dashboard.
	LogFile     string
	LogLevel    slog.Level
	ToastTTL    time.Duration
	ToastLimit  int
	NarrowWidth int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    slog.LevelInfo,
		ToastTTL:    5 * time.Second,
		ToastLimit:  3,
		NarrowWidth: 100,
	}
}

// LoadConfig reads FOREMAN_* environment variables, falling back to
// defaults for any unset or invalid values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("FOREMAN_FIXTURES"); v != "" {
		cfg.FixturesPath = v
	}
	if v := getenv("FOREMAN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("FOREMAN_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := getenv("FOREMAN_TOAST_TTL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ToastTTL = time.Duration(n) * time.Millisecond
		}
	}
	if v := getenv("FOREMAN_TOAST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ToastLimit = n
		}
	}
	if v := getenv("FOREMAN_NARROW_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.NarrowWidth = n
		}
	}

	return cfg
}
