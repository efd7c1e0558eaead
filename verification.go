package fincra

import (
	"context"
	"net/http"
	"net/url"
)

// VerifyBVN resolves a Bank Verification Number.
func (c *Client) VerifyBVN(ctx context.Context, bvn string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/verification/bvn/"+url.PathEscape(bvn), nil)
}

// VerifyBankAccount resolves a bank account from its number and bank code.
func (c *Client) VerifyBankAccount(ctx context.Context, data map[string]any) (Response, error) {
	return c.execute(ctx, http.MethodPost, "/verification/account", data)
}

// VerifyIBAN resolves an IBAN.
func (c *Client) VerifyIBAN(ctx context.Context, iban string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/verification/iban/"+url.PathEscape(iban), nil)
}

// ResolveBIN resolves a card Bank Identification Number.
func (c *Client) ResolveBIN(ctx context.Context, bin string) (Response, error) {
	return c.execute(ctx, http.MethodGet, "/verification/bin/"+url.PathEscape(bin), nil)
}
