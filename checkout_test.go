package fincra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutInput() map[string]any {
	return map[string]any{
		"amount":        5000,
		"customerEmail": "ade@example.com",
		"customerName":  "Ade",
	}
}

func TestNormalizeCheckout_Defaults(t *testing.T) {
	cr, err := NormalizeCheckout(validCheckoutInput(), "")
	require.NoError(t, err)

	assert.Equal(t, float64(5000), cr.Amount)
	assert.Equal(t, "NGN", cr.Currency)
	assert.Equal(t, "business", cr.FeeBearer)
	assert.Equal(t, "ade@example.com", cr.CustomerEmail)
	assert.Equal(t, "Ade", cr.CustomerName)
	assert.NotEmpty(t, cr.Reference)
	assert.True(t, strings.HasPrefix(cr.Reference, "fincra_"))
}

func TestNormalizeCheckout_GeneratedReferencesDiffer(t *testing.T) {
	a, err := NormalizeCheckout(validCheckoutInput(), "")
	require.NoError(t, err)
	b, err := NormalizeCheckout(validCheckoutInput(), "")
	require.NoError(t, err)

	assert.NotEqual(t, a.Reference, b.Reference)
}

func TestNormalizeCheckout_CallerReferenceWins(t *testing.T) {
	input := validCheckoutInput()
	input["reference"] = "order_42"

	cr, err := NormalizeCheckout(input, "")
	require.NoError(t, err)
	assert.Equal(t, "order_42", cr.Reference)
}

func TestNormalizeCheckout_AliasOrder(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  func(t *testing.T, cr *CheckoutRequest)
	}{
		{
			name: "bare email beats customer.email",
			input: map[string]any{
				"amount": 1000,
				"email":  "bare@example.com",
				"customer": map[string]any{
					"email": "nested@example.com",
					"name":  "Nested Name",
				},
			},
			want: func(t *testing.T, cr *CheckoutRequest) {
				assert.Equal(t, "bare@example.com", cr.CustomerEmail)
				assert.Equal(t, "Nested Name", cr.CustomerName)
			},
		},
		{
			name: "customer.email beats customerEmail",
			input: map[string]any{
				"amount": 1000,
				"customer": map[string]any{
					"email": "nested@example.com",
				},
				"customerEmail": "flat@example.com",
				"name":          "Ade",
			},
			want: func(t *testing.T, cr *CheckoutRequest) {
				assert.Equal(t, "nested@example.com", cr.CustomerEmail)
			},
		},
		{
			name: "bare name beats customer.name and customerName",
			input: map[string]any{
				"amount": 1000,
				"email":  "a@example.com",
				"name":   "Bare",
				"customer": map[string]any{
					"name": "Nested",
				},
				"customerName": "Flat",
			},
			want: func(t *testing.T, cr *CheckoutRequest) {
				assert.Equal(t, "Bare", cr.CustomerName)
			},
		},
		{
			name: "phoneNumber beats phone and customerPhone",
			input: map[string]any{
				"amount":        1000,
				"email":         "a@example.com",
				"name":          "Ade",
				"phoneNumber":   "0801",
				"phone":         "0802",
				"customerPhone": "0803",
			},
			want: func(t *testing.T, cr *CheckoutRequest) {
				assert.Equal(t, "0801", cr.CustomerPhone)
			},
		},
		{
			name: "phone beats customer.phoneNumber",
			input: map[string]any{
				"amount": 1000,
				"email":  "a@example.com",
				"name":   "Ade",
				"phone":  "0802",
				"customer": map[string]any{
					"phoneNumber": "0804",
				},
			},
			want: func(t *testing.T, cr *CheckoutRequest) {
				assert.Equal(t, "0802", cr.CustomerPhone)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr, err := NormalizeCheckout(tt.input, "")
			require.NoError(t, err)
			tt.want(t, cr)
		})
	}
}

func TestNormalizeCheckout_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		wantMsg string
	}{
		{
			name:    "amount checked first even when everything is missing",
			input:   map[string]any{},
			wantMsg: "Amount is required",
		},
		{
			name:    "amount present but no email",
			input:   map[string]any{"amount": 1000},
			wantMsg: "Customer email is required",
		},
		{
			name: "amount and email present but no name",
			input: map[string]any{
				"amount": 1000,
				"email":  "a@example.com",
			},
			wantMsg: "Customer name is required",
		},
		{
			name: "non-numeric amount counts as absent",
			input: map[string]any{
				"amount": "not-a-number",
				"email":  "a@example.com",
				"name":   "Ade",
			},
			wantMsg: "Amount is required",
		},
		{
			name: "empty email alias halts resolution",
			input: map[string]any{
				"amount":        1000,
				"email":         "",
				"customerEmail": "fallback@example.com",
				"name":          "Ade",
			},
			wantMsg: "Customer email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeCheckout(tt.input, "")
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestNormalizeCheckout_CallbackResolution(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		fallback string
		want     string
	}{
		{
			name: "redirectUrl wins",
			input: map[string]any{
				"amount": 1, "email": "a@b.c", "name": "A",
				"redirectUrl": "https://example.com/redirect",
				"callbackUrl": "https://example.com/callback",
			},
			fallback: "https://example.com/default",
			want:     "https://example.com/redirect",
		},
		{
			name: "callbackUrl beats fallback",
			input: map[string]any{
				"amount": 1, "email": "a@b.c", "name": "A",
				"callbackUrl": "https://example.com/callback",
			},
			fallback: "https://example.com/default",
			want:     "https://example.com/callback",
		},
		{
			name: "fallback when input has neither",
			input: map[string]any{
				"amount": 1, "email": "a@b.c", "name": "A",
			},
			fallback: "https://example.com/default",
			want:     "https://example.com/default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr, err := NormalizeCheckout(tt.input, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cr.CallbackURL)
		})
	}
}

func TestCheckoutPayload_OptionalFieldsOmitted(t *testing.T) {
	cr, err := NormalizeCheckout(validCheckoutInput(), "")
	require.NoError(t, err)

	p := cr.payload()
	for _, key := range []string{"paymentMethods", "defaultPaymentMethod", "metadata", "successMessage", "settlementDestination", "redirectUrl"} {
		_, ok := p[key]
		assert.False(t, ok, "optional field %q must not be emitted when absent", key)
	}

	customer, ok := p["customer"].(map[string]any)
	require.True(t, ok)
	_, hasPhone := customer["phoneNumber"]
	assert.False(t, hasPhone)
}

func TestCheckoutPayload_OptionalFieldsIncluded(t *testing.T) {
	input := validCheckoutInput()
	input["phone"] = "0801"
	input["paymentMethods"] = []any{"card", "bank_transfer"}
	input["defaultPaymentMethod"] = "card"
	input["metadata"] = map[string]any{"orderId": "42"}
	input["successMessage"] = "Thanks!"
	input["settlementDestination"] = "wallet"
	input["callbackUrl"] = "https://example.com/cb"

	cr, err := NormalizeCheckout(input, "")
	require.NoError(t, err)

	p := cr.payload()
	assert.Equal(t, []any{"card", "bank_transfer"}, p["paymentMethods"])
	assert.Equal(t, "card", p["defaultPaymentMethod"])
	assert.Equal(t, map[string]any{"orderId": "42"}, p["metadata"])
	assert.Equal(t, "Thanks!", p["successMessage"])
	assert.Equal(t, "wallet", p["settlementDestination"])
	assert.Equal(t, "https://example.com/cb", p["redirectUrl"])

	customer, ok := p["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0801", customer["phoneNumber"])
}

func TestCreateCheckoutPayment_SendsNormalizedPayload(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"status":true,"data":{"link":"https://checkout.fincra.com/pay/abc"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.CreateCheckoutPayment(context.Background(), validCheckoutInput())
	require.NoError(t, err)

	assert.Equal(t, "/checkout/payments", gotPath)
	assert.Equal(t, "NGN", gotPayload["currency"])
	assert.Equal(t, "business", gotPayload["feeBearer"])
	assert.Equal(t, float64(5000), gotPayload["amount"])
	assert.NotEmpty(t, gotPayload["reference"])
	assert.Equal(t, "https://checkout.fincra.com/pay/abc", resp.Data()["link"])
}

func TestCreateCheckoutPayment_ValidationBeforeNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"status":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.CreateCheckoutPayment(context.Background(), map[string]any{"amount": 1000})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Customer email is required", vErr.Message)
	assert.False(t, called, "no network call may happen before validation passes")
}

func TestCheckoutLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{"link":"https://checkout.fincra.com/pay/abc"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	link, err := client.CheckoutLink(context.Background(), validCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.fincra.com/pay/abc", link)
}

func TestCheckoutLink_MissingLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.CheckoutLink(context.Background(), validCheckoutInput())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unable to generate checkout link", apiErr.Message)
	assert.Equal(t, 0, apiErr.Code)
}

func TestPayWithWidget(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")

	params, err := client.PayWithWidget(validCheckoutInput())
	require.NoError(t, err)

	assert.Equal(t, "pk_test_public", params.PublicKey)
	assert.Equal(t, float64(5000), params.Amount)
	assert.Equal(t, "NGN", params.Currency)
	assert.NotEmpty(t, params.Reference)
}

func TestPayWithWidget_Invalid(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")

	_, err := client.PayWithWidget(map[string]any{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Amount is required", vErr.Message)
}
