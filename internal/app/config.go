package app

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPaths []string // extra HCL or YAML catalog files or directories
	NoCurated    bool     // skip the embedded dataset

	Weights []string // kind=points overrides, applied after catalog weights

	Format      string // text or json
	Color       bool
	MetricsFile string
	Workers     int

	LogFormat string
	LogLevel  string
}

var validFormats = []string{"text", "json"}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if !slices.Contains(validFormats, cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(validFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers cannot be negative")
	}
	if cfg.NoCurated && len(cfg.CatalogPaths) == 0 {
		return nil, errors.New("no-curated requires at least one catalog path")
	}
	return &cfg, nil
}
