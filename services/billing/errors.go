package billing

import "errors"

var (
	// ErrNonPositiveRent is returned when a bill would be composed from a missing or non-positive rent.
	ErrNonPositiveRent = errors.New("billing: rent amount must be positive")
	// ErrUnknownEvent is returned for lifecycle events the composer does not price.
	ErrUnknownEvent = errors.New("billing: unknown billing event")
)
