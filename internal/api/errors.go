package api

import (
	"errors"
	"fmt"
)

// QueryError indicates the request parameters could not be serialized
// into a query string or path. No request was sent.
type QueryError struct {
	Field  string
	Reason string
}

func (e *QueryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid request parameter %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid request parameters: %s", e.Reason)
}

// TransportError wraps a failure of the injected HTTP capability
// (DNS, TLS, connection reset, context cancellation). The underlying
// error is re-surfaced without inspection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a 4xx/5xx response from the monitoring API. Body holds the
// raw response bytes, which for errors may not match the success schema.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// DecodeError indicates the response body did not match the expected
// JSON shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected API response format: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// missingKey reports an envelope whose expected root key was absent.
func missingKey(key string) error {
	return &DecodeError{Err: fmt.Errorf("response missing %q key", key)}
}

// IsAPIError reports whether err is an API status error.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == 404
}

// IsForbidden reports whether err is an API error with status 403. The
// monitoring API signals exceeded period limits and permission problems
// with 403 responses.
func IsForbidden(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == 403
}
