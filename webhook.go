package fincra

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// SignatureHeader is the HTTP header carrying the webhook signature.
const SignatureHeader = "X-Fincra-Signature"

// WebhookEnvelope holds the raw bytes of an inbound webhook request together
// with its signature header. It exists only for the duration of verification
// and dispatch; Body must be the bytes as received, not re-serialized JSON.
type WebhookEnvelope struct {
	Body      []byte
	Signature string
}

// WebhookHandler is invoked synchronously with the decoded webhook payload
// after signature verification succeeds.
type WebhookHandler func(data map[string]any) error

// VerifySignature reports whether signature is the hex-encoded HMAC-SHA512 of
// body under secret. A missing or empty signature is never compared and
// always fails. The comparison is constant-time.
func VerifySignature(body []byte, signature string, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	computed := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}

// VerifyWebhookSignature verifies an inbound payload against the client's
// configured webhook secret.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	return VerifySignature(body, signature, c.cfg.WebhookSecret.Unmask())
}

// ProcessWebhook verifies the envelope and, only on success, decodes the
// payload and hands it to handler. An unverified payload is never parsed:
// verification failure returns ErrInvalidSignature before any JSON decoding.
func (c *Client) ProcessWebhook(envelope WebhookEnvelope, handler WebhookHandler) error {
	if !c.VerifyWebhookSignature(envelope.Body, envelope.Signature) {
		return ErrInvalidSignature
	}

	var data map[string]any
	if err := json.Unmarshal(envelope.Body, &data); err != nil {
		return newAPIError(err.Error(), 0, err)
	}

	return handler(data)
}
