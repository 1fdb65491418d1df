package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup by identifier or filter
	// yields no record. Handlers map it to 404; it is never conflated
	// with store failures.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured is returned when an upstream provider has no
	// credentials configured.
	ErrNotConfigured = errors.New("not configured")
)
