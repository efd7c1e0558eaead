package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// GetBanks lists supported banks, optionally filtered by ISO country code.
// The country parameter is omitted from the URL when empty.
func (c *Client) GetBanks(ctx context.Context, country string) (Response, error) {
	path := "/banks"
	if country != "" {
		q := url.Values{}
		q.Set("country", country)
		path += "?" + q.Encode()
	}
	return c.execute(ctx, http.MethodGet, path, nil)
}

// GetCurrencies lists supported currencies.
func (c *Client) GetCurrencies(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/currencies", nil)
}

// GetCountries lists supported countries.
func (c *Client) GetCountries(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/countries", nil)
}
