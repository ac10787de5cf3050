package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// Fields missing from the file keep their defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Name == "" {
		return errors.New("name: is required")
	}

	if cfg.Path == "" {
		return errors.New("path: is required")
	}

	if cfg.StartMarker == "" {
		return errors.New("start_marker: is required")
	}

	if cfg.EndTag == "" {
		return errors.New("end_tag: is required")
	}

	if cfg.Window < 1 {
		return fmt.Errorf("window: must be >= 1, got %d", cfg.Window)
	}

	return nil
}
