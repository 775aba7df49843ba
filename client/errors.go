package client

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a crate or version is not found.
var ErrNotFound = errors.New("not found")

// ErrUpstreamDown is returned when the registry is unavailable, either
// directly (5xx) or because its circuit breaker is open.
var ErrUpstreamDown = errors.New("upstream registry unavailable")

// HTTPError represents a non-2xx HTTP response.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// IsNotFound returns true if the error represents a 404 response.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}

// NotFoundError wraps ErrNotFound with crate context.
type NotFoundError struct {
	Name    string
	Version string
}

func (e *NotFoundError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("crate %s version %s not found", e.Name, e.Version)
	}
	return fmt.Sprintf("crate %s not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
