package fincra

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// referencePrefix is prepended to every generated checkout reference.
const referencePrefix = "fincra"

// CheckoutRequest is the canonical checkout payload, built once per call from
// a loosely-structured input map and never persisted. Amount, CustomerEmail
// and CustomerName are guaranteed present; validation happens before
// serialization.
type CheckoutRequest struct {
	Amount                float64
	Currency              string
	CustomerName          string
	CustomerEmail         string
	CustomerPhone         string
	Reference             string
	FeeBearer             string
	CallbackURL           string
	Metadata              map[string]any
	PaymentMethods        any
	DefaultPaymentMethod  string
	SuccessMessage        string
	SettlementDestination string
}

// WidgetParams carries everything a hosted-widget page needs to initialize
// the inline checkout script. The client never renders HTML itself.
type WidgetParams struct {
	PublicKey string
	CheckoutRequest
}

// fieldPath is one candidate lookup for an aliased input field, possibly
// nested one level (e.g. {"customer", "email"}).
type fieldPath []string

// Alias resolution order per logical field. First present (non-null) wins;
// this order is a compatibility contract with multiple caller shapes and must
// not be reordered.
var (
	emailAliases = []fieldPath{{"email"}, {"customer", "email"}, {"customerEmail"}}
	nameAliases  = []fieldPath{{"name"}, {"customer", "name"}, {"customerName"}}
	phoneAliases = []fieldPath{{"phoneNumber"}, {"phone"}, {"customer", "phoneNumber"}, {"customerPhone"}}
)

// NormalizeCheckout resolves a loosely-typed input map into a CheckoutRequest.
//
// Validation order is fixed: amount, then email, then name; the first failing
// check is reported. A field alias that is present but empty stops resolution
// at that alias (later forms are not silently preferred over earlier ones),
// so an empty "email" fails validation even when "customerEmail" is set.
//
// The callback URL resolves from redirectUrl, then callbackUrl, then
// fallbackCallback (typically the client's configured callback route).
func NormalizeCheckout(input map[string]any, fallbackCallback string) (*CheckoutRequest, error) {
	amount, ok := numericValue(input["amount"])
	if !ok {
		return nil, NewValidationError("Amount is required")
	}

	email, _ := resolveAlias(input, emailAliases)
	if email == "" {
		return nil, NewValidationError("Customer email is required")
	}

	name, _ := resolveAlias(input, nameAliases)
	if name == "" {
		return nil, NewValidationError("Customer name is required")
	}

	phone, _ := resolveAlias(input, phoneAliases)

	cr := &CheckoutRequest{
		Amount:        amount,
		Currency:      stringValue(input["currency"]),
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Reference:     stringValue(input["reference"]),
		FeeBearer:     stringValue(input["feeBearer"]),
	}

	if cr.Currency == "" {
		cr.Currency = "NGN"
	}
	if cr.FeeBearer == "" {
		cr.FeeBearer = "business"
	}
	if cr.Reference == "" {
		cr.Reference = generateReference()
	}

	cr.CallbackURL = stringValue(input["redirectUrl"])
	if cr.CallbackURL == "" {
		cr.CallbackURL = stringValue(input["callbackUrl"])
	}
	if cr.CallbackURL == "" {
		cr.CallbackURL = fallbackCallback
	}

	if md, ok := input["metadata"].(map[string]any); ok {
		cr.Metadata = md
	}
	if pm, ok := input["paymentMethods"]; ok && pm != nil {
		cr.PaymentMethods = pm
	}
	cr.DefaultPaymentMethod = stringValue(input["defaultPaymentMethod"])
	cr.SuccessMessage = stringValue(input["successMessage"])
	cr.SettlementDestination = stringValue(input["settlementDestination"])

	return cr, nil
}

// payload serializes the request for POST /checkout/payments. Optional fields
// are included only when set, never as null or empty placeholders.
func (cr *CheckoutRequest) payload() map[string]any {
	customer := map[string]any{
		"name":  cr.CustomerName,
		"email": cr.CustomerEmail,
	}
	if cr.CustomerPhone != "" {
		customer["phoneNumber"] = cr.CustomerPhone
	}

	p := map[string]any{
		"amount":    cr.Amount,
		"currency":  cr.Currency,
		"customer":  customer,
		"feeBearer": cr.FeeBearer,
		"reference": cr.Reference,
	}

	if cr.CallbackURL != "" {
		p["redirectUrl"] = cr.CallbackURL
	}
	if cr.PaymentMethods != nil {
		p["paymentMethods"] = cr.PaymentMethods
	}
	if cr.DefaultPaymentMethod != "" {
		p["defaultPaymentMethod"] = cr.DefaultPaymentMethod
	}
	if cr.Metadata != nil {
		p["metadata"] = cr.Metadata
	}
	if cr.SuccessMessage != "" {
		p["successMessage"] = cr.SuccessMessage
	}
	if cr.SettlementDestination != "" {
		p["settlementDestination"] = cr.SettlementDestination
	}

	return p
}

// CreateCheckoutPayment normalizes input and creates a redirect checkout
// payment, returning the raw API response for callers building their own
// redirect.
func (c *Client) CreateCheckoutPayment(ctx context.Context, input map[string]any) (Response, error) {
	cr, err := NormalizeCheckout(input, c.cfg.CallbackURL)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodPost, "/checkout/payments", cr.payload())
}

// CheckoutLink creates a redirect checkout payment and returns the hosted
// payment link from the response.
func (c *Client) CheckoutLink(ctx context.Context, input map[string]any) (string, error) {
	resp, err := c.CreateCheckoutPayment(ctx, input)
	if err != nil {
		return "", err
	}
	if link, ok := resp.Data()["link"].(string); ok && link != "" {
		return link, nil
	}
	return "", newAPIError("Unable to generate checkout link", 0, nil)
}

// PayWithWidget resolves input into the parameters a hosted-widget page needs.
// No network call is made; the widget script submits the payment itself.
func (c *Client) PayWithWidget(input map[string]any) (*WidgetParams, error) {
	cr, err := NormalizeCheckout(input, c.cfg.CallbackURL)
	if err != nil {
		return nil, err
	}
	return &WidgetParams{
		PublicKey:       c.cfg.PublicKey,
		CheckoutRequest: *cr,
	}, nil
}

// VerifyPayment looks up a checkout payment by its merchant reference.
func (c *Client) VerifyPayment(ctx context.Context, reference string) (Response, error) {
	if reference == "" {
		return nil, NewValidationError("Transaction reference is required")
	}
	return c.execute(ctx, http.MethodGet, "/checkout/payments/merchant-reference/"+url.PathEscape(reference), nil)
}

// generateReference produces a best-effort-unique checkout reference from a
// fixed prefix, a random component and a timestamp component.
func generateReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s_%d", referencePrefix, id, time.Now().Unix())
}

// resolveAlias walks the candidate paths in order and returns the value of the
// first one that is present and non-null, coerced to a string. The bool
// reports whether any candidate was present at all.
func resolveAlias(input map[string]any, candidates []fieldPath) (string, bool) {
	for _, path := range candidates {
		v, ok := lookupPath(input, path)
		if !ok || v == nil {
			continue
		}
		return stringValue(v), true
	}
	return "", false
}

// lookupPath fetches a possibly-nested value from the input map.
func lookupPath(input map[string]any, path fieldPath) (any, bool) {
	current := input
	for i, key := range path {
		v, ok := current[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// stringValue coerces a decoded JSON scalar to a string; non-scalar or nil
// values coerce to "".
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// numericValue coerces a decoded JSON value to a float64 amount. Strings are
// parsed; anything unparseable counts as absent.
func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
