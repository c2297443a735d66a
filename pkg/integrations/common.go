package integrations

import (
	"errors"
	"net/http"
	"time"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when the provider answers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and any other non-200 status.
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard per-request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
