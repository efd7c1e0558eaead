package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// CreateBeneficiary registers a payout beneficiary.
func (c *Client) CreateBeneficiary(ctx context.Context, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPost, "/beneficiaries", data)
}

// GetBeneficiaries lists beneficiaries.
func (c *Client) GetBeneficiaries(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/beneficiaries", nil)
}

// GetBeneficiary fetches a single beneficiary by id.
func (c *Client) GetBeneficiary(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/beneficiaries/"+url.PathEscape(id), nil)
}

// UpdateBeneficiary patches a beneficiary.
func (c *Client) UpdateBeneficiary(ctx context.Context, id string, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPatch, "/beneficiaries/"+url.PathEscape(id), data)
}

// DeleteBeneficiary removes a beneficiary.
func (c *Client) DeleteBeneficiary(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodDelete, "/beneficiaries/"+url.PathEscape(id), nil)
}
