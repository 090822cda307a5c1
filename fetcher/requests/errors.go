package requests

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"lolscope/pkg/messages"
)

// Error classes of a provider call, matched with errors.Is.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrRateLimited  = errors.New("rate limited by the provider")
	ErrUnauthorized = errors.New("provider credential invalid or expired")
	ErrServer       = errors.New("provider server error")
	ErrTransport    = errors.New("provider transport failure")
)

// APIError is returned for any non 2xx response.
// URL never contains the query string, so the credential is not leaked.
type APIError struct {
	StatusCode int
	URL        string
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}

// Is maps the status code to its error class.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// StatusCode returns the HTTP status of a provider error, or 0 when there was no response.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// retryable reports if the error is worth another attempt.
func retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServer)
}

// breakerFailure reports if the error says something about the provider health.
func breakerFailure(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrServer)
}
