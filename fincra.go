// Package fincra is a client for the Fincra payment-processing API: checkout,
// payouts, virtual accounts, beneficiaries, verification, wallet balances,
// transactions, conversions and reference data, plus HMAC verification of
// inbound webhooks.
//
// A Client is constructed once from an immutable ClientConfig and is safe to
// share across concurrent callers. Every operation is a single blocking
// request/response round trip; the client never retries and keeps no per-call
// state, so idempotency is the caller's responsibility via reference fields on
// write operations.
package fincra

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker/v2"
)

// Environment selects which Fincra API host the client talks to.
type Environment string

// Supported environments.
const (
	EnvSandbox Environment = "sandbox"
	EnvLive    Environment = "live"
)

// Default API base URLs per environment.
const (
	DefaultSandboxURL = "https://sandboxapi.fincra.com"
	DefaultLiveURL    = "https://api.fincra.com"
)

// defaultHTTPTimeout bounds a single outbound round trip when the caller does
// not supply their own http.Client.
const defaultHTTPTimeout = 30 * time.Second

// ClientConfig carries the credentials and host selection for a Client.
// It is copied at construction time and never mutated afterwards.
type ClientConfig struct {
	// SecretKey is sent as the api-key header on every request.
	SecretKey SecretString `validate:"required"`
	// PublicKey is sent as the x-pub-key header and exposed to widget callers.
	PublicKey string `validate:"required"`
	// BusinessID is sent as the x-business-id header.
	BusinessID string `validate:"required"`
	// WebhookSecret is the HMAC key for verifying inbound webhook payloads.
	WebhookSecret SecretString
	// Environment selects between SandboxURL and LiveURL.
	Environment Environment `validate:"required,oneof=sandbox live"`
	// SandboxURL and LiveURL override the default API hosts, mainly for tests.
	SandboxURL string `validate:"omitempty,url"`
	LiveURL    string `validate:"omitempty,url"`
	// CallbackURL is the default redirect target for checkout flows when the
	// caller's input carries neither redirectUrl nor callbackUrl.
	CallbackURL string `validate:"omitempty,url"`
}

// Client is an immutable Fincra API client. All methods are safe for
// concurrent use; the only shared mutable state is inside the circuit breaker
// and the HTTP transport, both of which manage their own synchronization.
type Client struct {
	cfg     ClientConfig
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	logger  *slog.Logger
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30s timeout). The supplied
// client owns connection pooling and transport-level timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the structured logger used for request telemetry.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBreaker replaces the default circuit breaker. Intended for tests and for
// sharing a breaker across clients.
func WithBreaker(cb *gobreaker.CircuitBreaker[*http.Response]) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

// NewClient validates cfg, resolves the base URL from the configured
// environment and returns a ready-to-use Client.
func NewClient(cfg ClientConfig, opts ...Option) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("fincra: invalid client config: %w", err)
	}

	if cfg.SandboxURL == "" {
		cfg.SandboxURL = DefaultSandboxURL
	}
	if cfg.LiveURL == "" {
		cfg.LiveURL = DefaultLiveURL
	}

	baseURL := cfg.SandboxURL
	if cfg.Environment == EnvLive {
		baseURL = cfg.LiveURL
	}

	c := &Client{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
		breaker: newBreaker(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// PublicKey returns the configured public key. Widget-rendering collaborators
// need it to initialize the hosted checkout script.
func (c *Client) PublicKey() string {
	return c.cfg.PublicKey
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newBreaker builds the default circuit breaker for outbound Fincra calls.
// The breaker never re-issues a request; it only rejects new calls after a
// run of consecutive transport or 5xx failures.
func newBreaker() *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "fincra",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	})
}
