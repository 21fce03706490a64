package tasks

import (
	"testing"
	"time"

	"rentwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{LeaseID: "lease-1", BillID: "bill-1", SendDate: "2024-12-30"}
	task, opts, err := NewReminderTask(payload, time.Date(2024, 12, 30, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, TypeBillingReminder, task.Type())
	assert.Len(t, opts, 4)

	parsed, err := ParseReminderPayload(task)
	require.NoError(t, err)
	assert.Equal(t, payload, parsed)
	assert.Equal(t, "reminder:lease-1:2024-12-30", ReminderTaskID(payload))
}
