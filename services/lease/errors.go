package lease

import (
	"errors"
	"fmt"
)

var (
	ErrLeaseNotFound    = errors.New("lease not found")
	ErrBillNotFound     = errors.New("bill not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyOccupied = errors.New("property already has an active lease")
	ErrForbidden        = errors.New("not allowed to act on this lease")
	// ErrPersistence wraps every storage failure of a transition. Nothing was written.
	ErrPersistence = errors.New("could not save lease changes")
)

// ValidationError rejects an input field before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TransitionError is returned when the lease or bill is not in a state that allows the operation.
type TransitionError struct {
	Op    string
	State string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}
