package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// CreateConversion converts funds between two wallet currencies.
func (c *Client) CreateConversion(ctx context.Context, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPost, "/conversions", data)
}

// GetConversions lists past conversions.
func (c *Client) GetConversions(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/conversions", nil)
}

// GetConversionRate quotes the current rate between two currencies.
func (c *Client) GetConversionRate(ctx context.Context, from, to string) (Response, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	return c.execute(ctx, http.MethodGet, "/conversions/rate?"+q.Encode(), nil)
}
