package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwise/models"
	"rentwise/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DateLayout is the calendar-date format carried in reminder payloads.
const DateLayout = "2006-01-02"

// SendHour is the local hour at which reminders fire on their send date.
const SendHour = 9

// Scheduler registers future advance-billing reminders.
type Scheduler interface {
	Schedule(ctx context.Context, req models.ReminderRequest) error
}

// Enqueuer is the part of *asynq.Client the scheduler uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqScheduler enqueues one reminder task per lease and send date on the
// reminder queue. Re-scheduling the same cycle is a no-op.
type AsynqScheduler struct {
	client   Enqueuer
	location *time.Location
	logger   *zap.Logger
}

func NewAsynqScheduler(client Enqueuer, loc *time.Location, logger *zap.Logger) *AsynqScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &AsynqScheduler{client: client, location: loc, logger: logger}
}

func (s *AsynqScheduler) Schedule(ctx context.Context, req models.ReminderRequest) error {
	if req.LeaseID == "" {
		return errors.New("Schedule: lease id is required")
	}

	payload := models.ReminderPayload{
		LeaseID:  req.LeaseID,
		BillID:   req.BillID,
		SendDate: req.SendDate.Format(DateLayout),
	}
	task, opts, err := tasks.NewReminderTask(payload, s.FireAt(req.SendDate))
	if err != nil {
		return fmt.Errorf("Schedule: failed to build reminder task: %w", err)
	}

	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		s.logger.Debug("Reminder already scheduled",
			zap.String("leaseId", req.LeaseID), zap.String("sendDate", payload.SendDate))
		return nil
	}
	if err != nil {
		return fmt.Errorf("Schedule: failed to enqueue reminder for lease %s: %w", req.LeaseID, err)
	}

	s.logger.Info("Reminder scheduled",
		zap.String("leaseId", req.LeaseID),
		zap.String("taskId", info.ID),
		zap.String("sendDate", payload.SendDate))
	return nil
}

// FireAt is SendHour on the send date in the billing timezone.
func (s *AsynqScheduler) FireAt(sendDate time.Time) time.Time {
	y, m, d := sendDate.Date()
	return time.Date(y, m, d, SendHour, 0, 0, 0, s.location)
}
