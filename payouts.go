package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// InitiatePayout starts a payout. Callers supply a reference field in data to
// make retries idempotent upstream.
func (c *Client) InitiatePayout(ctx context.Context, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPost, "/payouts", data)
}

// GetPayouts lists payouts.
func (c *Client) GetPayouts(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/payouts", nil)
}

// GetPayout fetches a single payout by id.
func (c *Client) GetPayout(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/payouts/"+url.PathEscape(id), nil)
}

// GetPayoutByReference fetches a payout by its merchant reference.
func (c *Client) GetPayoutByReference(ctx context.Context, reference string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/payouts/reference/"+url.PathEscape(reference), nil)
}

// CancelPayout cancels a pending payout.
func (c *Client) CancelPayout(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodPost, "/payouts/"+url.PathEscape(id)+"/cancel", nil)
}
