package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// GetBalance fetches the wallet balance. An empty currency lists balances for
// every wallet; a non-empty one filters to that currency. The parameter is
// omitted from the URL when empty, never appended blank.
func (c *Client) GetBalance(ctx context.Context, currency string) (Response, error) {
	path := "/wallets/balance"
	if currency != "" {
		q := url.Values{}
		q.Set("currency", currency)
		path += "?" + q.Encode()
	}
	return c.execute(ctx, http.MethodGet, path, nil)
}
