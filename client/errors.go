package client

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Display strings surfaced to the user, one per taxonomy branch.
const (
	msgNetwork  = "Network error. Please check your connection and try again."
	msgFallback = "Something went wrong. Please try again."
)

var statusMessages = map[int]string{
	400: "Invalid request. Please check your input.",
	401: "Your session has expired. Please log in again.",
	403: "You do not have permission to perform this action.",
	404: "The requested resource was not found.",
	500: "Server error. Please try again later.",
}

// APIError carries the HTTP status code and the user-facing message
// derived from the response. Code is 0 for transport failures.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// errorBody is the structured error shape the café API returns. Older
// endpoints use "error", newer ones "message" plus a details map.
type errorBody struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// mapError turns a non-2xx response into an APIError: a structured
// body's message is surfaced verbatim (details joined in), a bare
// status falls back to the per-code table.
func mapError(code int, body []byte) *APIError {
	var parsed errorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		msg := parsed.Error
		if msg == "" {
			msg = parsed.Message
		}
		if msg != "" {
			if detail := joinDetails(parsed.Details); detail != "" {
				msg += ": " + detail
			}
			return &APIError{Code: code, Message: msg}
		}
	}
	if msg, ok := statusMessages[code]; ok {
		return &APIError{Code: code, Message: msg}
	}
	return &APIError{Code: code, Message: fmt.Sprintf("Error: %d", code)}
}

// joinDetails flattens the details map into one string, keys sorted so
// the output is stable.
func joinDetails(details map[string]any) string {
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprint(details[k]))
	}
	return strings.Join(parts, ", ")
}

// ErrorMessage extracts the display string for any error coming out of
// the client. Unknown errors surface their own message when they have
// one and the generic fallback otherwise.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgFallback
}
