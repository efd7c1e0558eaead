package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads and validates the listener configuration.
//
// The loading sequence is:
//  1. Load a .env file via godotenv (non-fatal if absent; it never overrides
//     variables already set in the environment).
//  2. Process envconfig struct tags to populate the Config struct.
//  3. Validate the struct with go-playground/validator; any missing required
//     value fails fast at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
