package fincra

// Response is the decoded JSON body of a Fincra API call. Every body carries a
// boolean-like "status" field and, on failure, a "message" field; the rest of
// the shape varies per resource, so the map is handed to the caller as-is.
type Response map[string]any

// Status reports whether the response carries a truthy status field. An
// absent or falsy status always marks the call as failed regardless of the
// HTTP status code it arrived with.
func (r Response) Status() bool {
	return truthy(r["status"])
}

// Message returns the response message, or "" when absent.
func (r Response) Message() string {
	if s, ok := r["message"].(string); ok {
		return s
	}
	return ""
}

// Data returns the response data object, or nil when absent or not an object.
func (r Response) Data() map[string]any {
	if m, ok := r["data"].(map[string]any); ok {
		return m
	}
	return nil
}

// truthy interprets a decoded JSON value the way the API's status field is
// meant to be read: false, 0, "", "0", "false" and null are falsy, everything
// else (including objects and arrays) is truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0" && t != "false"
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}
