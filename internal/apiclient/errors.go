package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the remote API. Detail
// carries the server-provided human-readable message when one could be
// extracted from the payload.
type APIError struct {
	Path       string
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d on %s: %s", e.StatusCode, e.Path, e.Detail)
	}
	return fmt.Sprintf("api error %d on %s", e.StatusCode, e.Path)
}

// IsUnauthorized reports whether the error is a 401.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// TransportError represents a network-level failure; it is passed
// through to callers unmodified and never retried.
type TransportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Cause != nil {
		return fmt.Sprintf("transport error for %s: %s: %v", e.Path, msg, e.Cause)
	}
	return fmt.Sprintf("transport error for %s: %s", e.Path, msg)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// newAPIError builds an APIError, extracting a detail message from the
// usual DRF payload shapes: {"detail": ...}, {"message": ...} or
// {"error": ...}. Field-error maps fall back to the raw body.
func newAPIError(path string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if raw, ok := payload[key]; ok {
				var detail string
				if json.Unmarshal(raw, &detail) == nil && detail != "" {
					apiErr.Detail = detail
					break
				}
			}
		}
	}
	if apiErr.Detail == "" {
		trimmed := strings.TrimSpace(string(body))
		if trimmed != "" && len(trimmed) <= 200 {
			apiErr.Detail = trimmed
		}
	}

	return apiErr
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
