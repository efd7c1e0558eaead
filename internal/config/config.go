// Package config defines the configuration for the fincra webhook listener.
// Configuration is loaded once at process start and is immutable thereafter.
// Values resolve from the OS environment first, then from a .env file.
package config

import (
	"time"

	"fincra"
)

// Config is the top-level configuration for the listener binary. It carries
// the Fincra credentials plus process-level settings. Credentials use
// fincra.SecretString so a config dump can never leak them.
type Config struct {
	// Process settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT" default:"8080"`

	// Fincra credentials (from the dashboard)
	SecretKey     fincra.SecretString `envconfig:"FINCRA_SECRET_KEY" validate:"required"`
	PublicKey     string              `envconfig:"FINCRA_PUBLIC_KEY" validate:"required"`
	BusinessID    string              `envconfig:"FINCRA_BUSINESS_ID" validate:"required"`
	WebhookSecret fincra.SecretString `envconfig:"FINCRA_WEBHOOK_SECRET"`

	// Host selection
	Environment string `envconfig:"FINCRA_ENV" default:"sandbox" validate:"required,oneof=sandbox live"`
	SandboxURL  string `envconfig:"FINCRA_SANDBOX_URL" validate:"omitempty,url"`
	LiveURL     string `envconfig:"FINCRA_LIVE_URL" validate:"omitempty,url"`
	CallbackURL string `envconfig:"FINCRA_CALLBACK_URL" validate:"omitempty,url"`

	// Transport tuning
	HTTPTimeout time.Duration `envconfig:"FINCRA_HTTP_TIMEOUT" default:"30s"`
}

// ClientConfig maps the loaded configuration onto a fincra.ClientConfig.
func (c *Config) ClientConfig() fincra.ClientConfig {
	return fincra.ClientConfig{
		SecretKey:     c.SecretKey,
		PublicKey:     c.PublicKey,
		BusinessID:    c.BusinessID,
		WebhookSecret: c.WebhookSecret,
		Environment:   fincra.Environment(c.Environment),
		SandboxURL:    c.SandboxURL,
		LiveURL:       c.LiveURL,
		CallbackURL:   c.CallbackURL,
	}
}
