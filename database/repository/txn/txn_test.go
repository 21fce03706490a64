package txn

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingStep(name string, log *[]string, fail error) Step {
	return Step{
		Name: name,
		Do: func(context.Context) error {
			if fail != nil {
				return fail
			}
			*log = append(*log, "do:"+name)
			return nil
		},
		Undo: func(context.Context) error {
			*log = append(*log, "undo:"+name)
			return nil
		},
	}
}

func TestRunCompensating_AllSucceed(t *testing.T) {
	var log []string
	err := RunCompensating(context.Background(),
		recordingStep("lease", &log, nil),
		recordingStep("bill", &log, nil),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"do:lease", "do:bill"}, log)
}

func TestRunCompensating_UndoesCompletedStepsInReverse(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	err := RunCompensating(context.Background(),
		recordingStep("lease", &log, nil),
		recordingStep("bill", &log, nil),
		recordingStep("property", &log, boom),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "property", stepErr.Step)
	assert.Empty(t, stepErr.UndoErrs)
	assert.Equal(t, []string{"do:lease", "do:bill", "undo:bill", "undo:lease"}, log)
}

func TestRunCompensating_CollectsUndoFailures(t *testing.T) {
	undoErr := errors.New("undo failed")
	steps := []Step{
		{
			Name: "lease",
			Do:   func(context.Context) error { return nil },
			Undo: func(context.Context) error { return undoErr },
		},
		{
			Name: "cascade",
			Do:   func(context.Context) error { return errors.New("cascade failed") },
		},
	}
	err := Compensating{}.Run(context.Background(), steps...)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	require.Len(t, stepErr.UndoErrs, 1)
	assert.ErrorIs(t, stepErr.UndoErrs[0], undoErr)
	assert.Contains(t, err.Error(), "compensation errors")
}
