package sdk

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from API response codes. Use errors.Is() to check.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
)

// APIError carries the error payload returned by the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rxdex: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Unwrap maps the HTTP status to a sentinel error.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return ErrBadRequest
	case 404:
		return ErrNotFound
	case 503:
		return ErrUnavailable
	default:
		return nil
	}
}
