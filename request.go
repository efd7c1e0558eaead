package fincra

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Default failure messages used when an error body carries no message field.
const (
	msgRequestFailed = "Request failed"
	msgClientError   = "Client error occurred"
	msgServerError   = "Server error occurred"
)

// execute builds and sends one authenticated request and classifies the
// outcome. The body is serialized as JSON only when non-empty; a nil or empty
// map produces a bodyless request, not an empty JSON object.
//
// Classification:
//   - 2xx with truthy status: the decoded body is returned.
//   - 2xx with falsy/absent status: APIError with Code 0 (business failure).
//   - 4xx / 5xx: APIError with Code set to the HTTP status.
//   - transport error, malformed JSON, timeout, open breaker: APIError with
//     Code 0 and the underlying error text.
//
// execute never retries; each call maps to at most one outbound request. The
// breaker only rejects calls outright after consecutive transport/5xx
// failures, which surfaces as a Code-0 APIError.
func (c *Client) execute(ctx context.Context, method, path string, body map[string]any) (Response, error) {
	var reqBody io.Reader
	if len(body) > 0 {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, newAPIError(err.Error(), 0, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, newAPIError(err.Error(), 0, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.cfg.SecretKey.Unmask())
	req.Header.Set("x-pub-key", c.cfg.PublicKey)
	req.Header.Set("x-business-id", c.cfg.BusinessID)

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		// 5xx counts as a breaker failure; the response is still classified below.
		if r.StatusCode >= http.StatusInternalServerError {
			return r, errUpstream
		}
		return r, nil
	})

	if err != nil && resp == nil {
		// Transport failure, context cancellation, or breaker open.
		c.logger.WarnContext(ctx, "fincra request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, newAPIError(err.Error(), 0, err)
	}

	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, newAPIError(readErr.Error(), 0, readErr)
	}

	c.logger.DebugContext(ctx, "fincra request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errorFromBody(raw, resp.StatusCode, msgServerError)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, errorFromBody(raw, resp.StatusCode, msgClientError)
	}

	var payload Response
	if decErr := json.Unmarshal(raw, &payload); decErr != nil {
		return nil, newAPIError(decErr.Error(), 0, decErr)
	}

	// A JSON-valid body with a falsy status is a business-level failure, not a
	// transport error: it keeps Code 0 even though the HTTP status was 2xx.
	if !payload.Status() {
		msg := payload.Message()
		if msg == "" {
			msg = msgRequestFailed
		}
		return nil, newAPIError(msg, 0, nil)
	}

	return payload, nil
}

// errUpstream marks 5xx responses as failures for the circuit breaker.
var errUpstream = &upstreamError{}

type upstreamError struct{}

func (*upstreamError) Error() string { return "fincra: upstream server error" }

// errorFromBody builds an APIError for a 4xx/5xx response, preferring the
// decoded body's message field over the supplied default.
func errorFromBody(raw []byte, statusCode int, fallback string) *APIError {
	msg := fallback
	var payload Response
	if err := json.Unmarshal(raw, &payload); err == nil {
		if m := payload.Message(); m != "" {
			msg = m
		}
	}
	return newAPIError(msg, statusCode, nil)
}
