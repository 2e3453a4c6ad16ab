// Package config loads runtime settings for the ray-casting viewer from the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g. TRACY_WIDTH.
const Prefix = "TRACY"

// Config holds the viewer settings.
type Config struct {
	Width    int    `envconfig:"WIDTH" default:"1200"`
	Height   int    `envconfig:"HEIGHT" default:"1200"`
	Title    string `envconfig:"TITLE" default:"Tracy!"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Workers bounds the goroutines used to re-cast rays; 0 means GOMAXPROCS.
	Workers int `envconfig:"WORKERS" default:"0"`

	WallWidth float32 `envconfig:"WALL_WIDTH" default:"2"`
	RayWidth  float32 `envconfig:"RAY_WIDTH" default:"1"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings describe a usable window.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", c.Workers))
	}
	if c.WallWidth <= 0 || c.RayWidth <= 0 {
		errs = append(errs, errors.New("stroke widths must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
