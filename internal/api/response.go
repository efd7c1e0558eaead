// Package api is the HTTP boundary for the fincra client: it receives Fincra
// webhooks (verifying their signature before any business code runs) and
// serves the payment callback route. All error responses use the JSON shape
// {"error": message, "code": code}.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fincra"
)

// errorBody is the JSON envelope for every error response.
type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// JSON writes a JSON response with the given status code and payload.
func JSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorBody{Error: "failed to marshal response", Code: http.StatusInternalServerError})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error renders an escaped client error as JSON. A fincra.ValidationError is
// always a 400; a fincra.APIError uses its Code as the HTTP status when the
// code is a valid status, and 400 otherwise (Code 0 means no HTTP status is
// known). Anything else is a 500 without leaking internal details.
func Error(w http.ResponseWriter, err error) {
	var vErr *fincra.ValidationError
	if errors.As(err, &vErr) {
		JSON(w, http.StatusBadRequest, errorBody{Error: vErr.Message, Code: 0})
		return
	}

	var apiErr *fincra.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadRequest
		if apiErr.Code >= 100 && apiErr.Code <= 599 {
			status = apiErr.Code
		}
		JSON(w, status, errorBody{Error: apiErr.Message, Code: apiErr.Code})
		return
	}

	JSON(w, http.StatusInternalServerError, errorBody{Error: "an unexpected error occurred", Code: http.StatusInternalServerError})
}
