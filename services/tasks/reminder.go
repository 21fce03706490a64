package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"rentwise/models"

	"github.com/hibiken/asynq"
)

const TypeBillingReminder = "billing:reminder"

// ReminderTaskID identifies the reminder of one lease cycle so it is enqueued once.
func ReminderTaskID(payload models.ReminderPayload) string {
	return fmt.Sprintf("reminder:%s:%s", payload.LeaseID, payload.SendDate)
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBillingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload)),
		asynq.MaxRetry(3),
		asynq.Retention(48 * time.Hour),
	}

	return task, opts, nil
}

func ParseReminderPayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}
