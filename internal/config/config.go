// Package config loads the optional client-side configuration file.
// The windowing core itself has no configuration surface; this covers
// the ambient concerns of a program using it, such as which display to
// connect to and how chatty the diagnostics should be.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the effective configuration.
type Config struct {
	// Display selects the X display to connect to; empty means the
	// DISPLAY environment variable.
	Display string `yaml:"display,omitempty"`
	// XAuthority overrides the XAUTHORITY environment variable when
	// set.
	XAuthority string `yaml:"xauthority,omitempty"`
	// LogLevel is one of debug, info, warning, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "appf", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path. A missing file
// yields the defaults; a present but invalid file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return fmt.Errorf("log_level must be one of: debug, info, warning, error")
	}
	return nil
}

// SlogLevel maps the configured log level onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
