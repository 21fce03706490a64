package txn

import (
	"context"
	"errors"
	"fmt"
)

// Step is one write of a multi-collection change. Undo reverses Do and is only
// invoked when the steps cannot run inside a real transaction. A nil Undo is
// allowed for the last step of a change.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Runner applies a set of steps all-or-nothing.
type Runner interface {
	Run(ctx context.Context, steps ...Step) error
}

// StepError reports the step that failed and any compensation that failed after it.
type StepError struct {
	Step     string
	Err      error
	UndoErrs []error
}

func (e *StepError) Error() string {
	if len(e.UndoErrs) > 0 {
		return fmt.Sprintf("step %s failed: %v (compensation errors: %v)", e.Step, e.Err, errors.Join(e.UndoErrs...))
	}
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// RunCompensating applies steps in order. When a step fails, the completed
// steps are undone in reverse order before the error is returned.
func RunCompensating(ctx context.Context, steps ...Step) error {
	for i, s := range steps {
		if err := s.Do(ctx); err != nil {
			stepErr := &StepError{Step: s.Name, Err: err}
			for j := i - 1; j >= 0; j-- {
				if steps[j].Undo == nil {
					continue
				}
				if uerr := steps[j].Undo(ctx); uerr != nil {
					stepErr.UndoErrs = append(stepErr.UndoErrs, fmt.Errorf("undo %s: %w", steps[j].Name, uerr))
				}
			}
			return stepErr
		}
	}
	return nil
}

// Compensating is a Runner for stores without transactions.
type Compensating struct{}

func (Compensating) Run(ctx context.Context, steps ...Step) error {
	return RunCompensating(ctx, steps...)
}
