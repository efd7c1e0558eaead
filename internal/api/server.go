package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fincra"
)

// maxWebhookBodySize caps inbound webhook payloads (64 KB). Fincra events are
// small; the limit protects against abuse.
const maxWebhookBodySize = 64 * 1024

// WebhookProcessor verifies and dispatches an inbound webhook envelope.
// This is the subset of *fincra.Client the webhook route needs.
type WebhookProcessor interface {
	ProcessWebhook(envelope fincra.WebhookEnvelope, handler fincra.WebhookHandler) error
}

// PaymentVerifier looks up a checkout payment by merchant reference.
// This is the subset of *fincra.Client the callback route needs.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, reference string) (fincra.Response, error)
}

// Server wires the webhook and callback routes onto a chi router.
type Server struct {
	processor WebhookProcessor
	verifier  PaymentVerifier
	handler   fincra.WebhookHandler
	logger    *slog.Logger
	router    *chi.Mux
}

// NewServer builds the HTTP boundary. handler is the business consumer run
// with each verified webhook payload; it is never invoked for payloads whose
// signature does not verify.
func NewServer(
	processor WebhookProcessor,
	verifier PaymentVerifier,
	handler fincra.WebhookHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		processor: processor,
		verifier:  verifier,
		handler:   handler,
		logger:    logger,
		router:    chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Post("/fincra/webhook", s.handleWebhook)
	s.router.Get("/fincra/callback", s.handleCallback)

	return s
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleWebhook receives Fincra events. The raw body and X-Fincra-Signature
// header flow to the client's verifier; an invalid signature is rejected with
// 401 before the payload is parsed or the business handler runs.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodySize)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.WarnContext(r.Context(), "failed to read webhook body", "error", err)
		JSON(w, http.StatusBadRequest, errorBody{Error: "failed to read request body", Code: http.StatusBadRequest})
		return
	}

	envelope := fincra.WebhookEnvelope{
		Body:      payload,
		Signature: r.Header.Get(fincra.SignatureHeader),
	}

	if err := s.processor.ProcessWebhook(envelope, s.handler); err != nil {
		if errors.Is(err, fincra.ErrInvalidSignature) {
			s.logger.WarnContext(r.Context(), "webhook signature verification failed")
			JSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid signature", Code: http.StatusUnauthorized})
			return
		}
		s.logger.ErrorContext(r.Context(), "webhook dispatch failed", "error", err)
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// handleCallback resolves the redirect landing after a hosted checkout: it
// verifies the referenced payment and returns the raw API response.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")

	resp, err := s.verifier.VerifyPayment(r.Context(), reference)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}
