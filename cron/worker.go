package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwise/database"
	"rentwise/models"
	"rentwise/services/billing"
	"rentwise/services/lease"
	"rentwise/services/notification"
	"rentwise/services/reminder"
	"rentwise/services/tasks"
	"rentwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// LeaseGetter loads the lease a reminder belongs to.
type LeaseGetter interface {
	GetByID(ctx context.Context, id string) (*models.Lease, error)
}

// BillLister loads the bills of a lease.
type BillLister interface {
	ListByLease(ctx context.Context, leaseID string) ([]models.Bill, error)
}

// ReminderHandler sends the advance billing reminder of a lease cycle. The
// cycle is recomputed when the task fires, so a reminder whose cycle was
// settled or moved in the meantime is dropped.
type ReminderHandler struct {
	Leases   LeaseGetter
	Bills    BillLister
	Notifier notification.Dispatcher
	Location *time.Location
	LinkBase string
	Now      func() time.Time
	Logger   *zap.Logger
}

func (h *ReminderHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseReminderPayload(task)
	if err != nil {
		h.Logger.Error("Dropping reminder task", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	sendDate, err := time.Parse(reminder.DateLayout, p.SendDate)
	if err != nil {
		h.Logger.Error("Dropping reminder task", zap.String("sendDate", p.SendDate), zap.Error(err))
		return fmt.Errorf("invalid send date %q: %w", p.SendDate, asynq.SkipRetry)
	}

	l, err := h.Leases.GetByID(ctx, p.LeaseID)
	if errors.Is(err, database.ErrNotFound) {
		h.Logger.Info("Reminder for unknown lease skipped", zap.String("leaseId", p.LeaseID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("ReminderHandler: load lease: %w", err)
	}
	if !l.IsOpen() {
		h.Logger.Debug("Reminder for ended lease skipped", zap.String("leaseId", l.ID))
		return nil
	}

	bills, err := h.Bills.ListByLease(ctx, l.ID)
	if err != nil {
		return fmt.Errorf("ReminderHandler: list bills: %w", err)
	}

	entry := billing.EntryFor(*l, bills, h.today())
	switch {
	case entry.Status == string(billing.StatusConfirming):
		h.Logger.Debug("Reminder skipped, payment awaiting confirmation", zap.String("leaseId", l.ID))
		return nil
	case entry.SendDate.After(sendDate):
		h.Logger.Debug("Reminder skipped, cycle already settled", zap.String("leaseId", l.ID),
			zap.Time("nextDueDate", entry.NextDueDate))
		return nil
	case l.ContractEndDate != nil && entry.NextDueDate.After(*l.ContractEndDate):
		h.Logger.Debug("Reminder skipped, contract ends first", zap.String("leaseId", l.ID))
		return nil
	}

	h.Notifier.Dispatch(reminderMessage(*l, entry, h.LinkBase))
	h.Logger.Info("Billing reminder dispatched",
		zap.String("leaseId", l.ID),
		zap.String("tenantId", l.TenantID),
		zap.Time("dueDate", entry.NextDueDate))
	return nil
}

func (h *ReminderHandler) today() time.Time {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	return billing.DateOnly(now(), loc)
}

func reminderMessage(l models.Lease, entry models.ScheduleEntry, linkBase string) models.Notification {
	msg := fmt.Sprintf("Your rent for %s is due on %s.", l.PropertyTitle, entry.NextDueDate.Format("Jan 2, 2006"))
	if entry.AmountDue.IsPositive() {
		msg = fmt.Sprintf("Your rent of %s for %s is due on %s.",
			lease.FormatPeso(entry.AmountDue), l.PropertyTitle, entry.NextDueDate.Format("Jan 2, 2006"))
	}
	if entry.Status == string(billing.StatusOverdue) {
		msg += fmt.Sprintf(" A late fee of %s applies.", lease.FormatPeso(entry.LateFee))
	}
	link := linkBase + "/leases/" + l.ID
	if entry.LatestBill != nil && entry.Status != string(billing.StatusScheduled) {
		link = linkBase + "/bills/" + entry.LatestBill.ID
	}
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyBillingReminder,
		Title:     "Upcoming Rent Payment",
		Message:   msg,
		Link:      link,
	}
}

// InitReminderWorker runs the reminder queue worker in the background and
// returns the server so it can be shut down.
func InitReminderWorker(handler *ReminderHandler, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		utils.ReminderQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeBillingReminder, handler)

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
	return srv
}

// monitorRedisConnection pings the reminder queue periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := utils.NewReminderQueueClient()
	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Reminder queue Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
