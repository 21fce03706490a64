package reminder

import (
	"context"
	"testing"
	"time"

	"rentwise/models"
	"rentwise/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1"}, nil
}

func TestAsynqScheduler_Schedule(t *testing.T) {
	q := &fakeEnqueuer{}
	s := NewAsynqScheduler(q, time.UTC, zap.NewNop())

	err := s.Schedule(context.Background(), models.ReminderRequest{
		LeaseID:  "lease-1",
		SendDate: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, q.tasks, 1)

	p, err := tasks.ParseReminderPayload(q.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, "lease-1", p.LeaseID)
	assert.Equal(t, "2024-12-30", p.SendDate)
}

func TestAsynqScheduler_DuplicateIsNotAnError(t *testing.T) {
	s := NewAsynqScheduler(&fakeEnqueuer{err: asynq.ErrTaskIDConflict}, time.UTC, zap.NewNop())
	err := s.Schedule(context.Background(), models.ReminderRequest{LeaseID: "lease-1", SendDate: time.Now()})
	assert.NoError(t, err)
}

func TestAsynqScheduler_FireAtUsesBillingTimezone(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)
	s := NewAsynqScheduler(&fakeEnqueuer{}, manila, zap.NewNop())

	fire := s.FireAt(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 12, 30, 1, 0, 0, 0, time.UTC), fire.UTC())
}
