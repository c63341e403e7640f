package domain

import "errors"

var (
	// ErrValidation signals caller-supplied input that violates the contract.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing medication.
	ErrNotFound = errors.New("medication not found")
	// ErrUnavailable signals that the catalog failed to load and the service
	// cannot answer until the process restarts.
	ErrUnavailable = errors.New("catalog unavailable")
)
