// Package config loads the demo runner configuration from .patterns.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".patterns.yaml"

// Defaults.
const (
	DefaultColor    = "63"
	DefaultLogLevel = "warn"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the runner configuration.
type Config struct {
	// Demos lists demo names to run, in order. Empty means all.
	Demos []string `yaml:"demos"`
	// Banners toggles the per-demo banner line.
	Banners bool `yaml:"banners"`
	// Plain renders banners without styling.
	Plain bool `yaml:"plain"`
	// Color is the banner foreground, any lipgloss color string.
	Color string `yaml:"color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Banners:  true,
		Color:    DefaultColor,
		LogLevel: DefaultLogLevel,
	}
}

// Parse decodes data over the defaults. Keys absent from data keep their
// default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	for i, name := range cfg.Demos {
		cfg.Demos[i] = strings.TrimSpace(name)
		if cfg.Demos[i] == "" {
			return nil, fmt.Errorf("%w: demos[%d] is empty", ErrInvalidConfig, i)
		}
	}

	return cfg, nil
}

// Load reads path. A missing file yields Default() when optional is true.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Level converts LogLevel to a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
