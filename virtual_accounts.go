package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// CreateVirtualAccount requests a new virtual account.
func (c *Client) CreateVirtualAccount(ctx context.Context, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPost, "/virtual-accounts", data)
}

// GetVirtualAccounts lists all virtual accounts.
func (c *Client) GetVirtualAccounts(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/virtual-accounts", nil)
}

// GetVirtualAccount fetches a single virtual account by id.
func (c *Client) GetVirtualAccount(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/virtual-accounts/"+url.PathEscape(id), nil)
}

// GetVirtualAccountRequests lists pending virtual account requests.
func (c *Client) GetVirtualAccountRequests(ctx context.Context) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/virtual-accounts/requests", nil)
}

// UpdateVirtualAccount patches a virtual account.
func (c *Client) UpdateVirtualAccount(ctx context.Context, id string, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPatch, "/virtual-accounts/"+url.PathEscape(id), data)
}

// DeleteVirtualAccount closes a virtual account.
func (c *Client) DeleteVirtualAccount(ctx context.Context, id string) (Response, error) {
	return c.execute(ctx, http.MethodDelete, "/virtual-accounts/"+url.PathEscape(id), nil)
}
