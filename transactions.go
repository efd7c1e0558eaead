package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// GetTransactions lists wallet transactions.
func (c *Client) GetTransactions(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/transactions", nil)
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/transactions/"+url.PathEscape(id), nil)
}
