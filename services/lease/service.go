package lease

import (
	"context"
	"errors"
	"time"

	"rentwise/config"
	"rentwise/database"
	billRepo "rentwise/database/repository/bill"
	leaseRepo "rentwise/database/repository/lease"
	propertyRepo "rentwise/database/repository/property"
	tenancyRepo "rentwise/database/repository/tenancy"
	"rentwise/database/repository/txn"
	userRepo "rentwise/database/repository/user"
	"rentwise/models"
	"rentwise/services/billing"
	"rentwise/services/notification"
	"rentwise/services/reminder"

	"go.uber.org/zap"
)

// Repositories groups the stores a DefaultLeaseService writes through.
type Repositories struct {
	Leases     leaseRepo.LeaseRepository
	Bills      billRepo.BillRepository
	Properties propertyRepo.PropertyRepository
	Users      userRepo.UserRepository
	Tenancy    tenancyRepo.TenancyRepository
}

func NewDefaultLeaseService(
	repos Repositories,
	runner txn.Runner,
	notifier notification.Dispatcher,
	reminders reminder.Scheduler,
	schedules ScheduleInvalidator,
	policy config.LeasePolicy,
	linkBase string,
	logger *zap.Logger,
) *DefaultLeaseService {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &DefaultLeaseService{
		Leases:     repos.Leases,
		Bills:      repos.Bills,
		Properties: repos.Properties,
		Users:      repos.Users,
		Tenancy:    repos.Tenancy,
		Txn:        runner,
		Notifier:   notifier,
		Reminders:  reminders,
		Schedules:  schedules,
		Composer:   billing.NewComposer(policy.IncludeAdvanceOnAssign),
		Policy:     policy,
		LinkBase:   linkBase,
		Now:        time.Now,
		Logger:     logger,
	}
}

func (s *DefaultLeaseService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// today is the current calendar date in the billing timezone.
func (s *DefaultLeaseService) today() time.Time {
	return billing.DateOnly(s.now(), s.Policy.Location)
}

func (s *DefaultLeaseService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// calendarDate keeps the caller's calendar date and drops the clock.
func calendarDate(t time.Time) time.Time {
	return billing.DateOnly(t, t.Location())
}

func (s *DefaultLeaseService) loadLease(ctx context.Context, op, leaseID string) (*models.Lease, error) {
	l, err := s.Leases.GetByID(ctx, leaseID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrLeaseNotFound
	}
	if err != nil {
		return nil, persistence(op, err)
	}
	return l, nil
}

func (s *DefaultLeaseService) loadBill(ctx context.Context, op, billID string) (*models.Bill, error) {
	b, err := s.Bills.GetByID(ctx, billID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, persistence(op, err)
	}
	return b, nil
}

func (s *DefaultLeaseService) loadProperty(ctx context.Context, op, propertyID string) (*models.Property, error) {
	p, err := s.Properties.GetByID(ctx, propertyID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, persistence(op, err)
	}
	return p, nil
}

// run commits steps as one unit and maps failures to ErrPersistence.
func (s *DefaultLeaseService) run(ctx context.Context, op string, steps ...txn.Step) error {
	if err := s.Txn.Run(ctx, steps...); err != nil {
		s.logger().Error("Lease transition rolled back", zap.String("op", op), zap.Error(err))
		return persistence(op, err)
	}
	return nil
}

// afterCommit runs the side effects of a committed transition. Failures are logged only.
func (s *DefaultLeaseService) afterCommit(ctx context.Context, landlordID string, notes []models.Notification, reminders []models.ReminderRequest) {
	if s.Schedules != nil {
		s.Schedules.Invalidate(ctx, landlordID)
	}

	if s.Reminders != nil {
		today := s.today()
		for _, r := range reminders {
			if r.SendDate.Before(today) {
				continue
			}
			if err := s.Reminders.Schedule(ctx, r); err != nil {
				s.logger().Warn("Failed to schedule billing reminder",
					zap.String("leaseId", r.LeaseID), zap.Time("sendDate", r.SendDate), zap.Error(err))
			}
		}
	}

	if s.Notifier != nil {
		for _, n := range notes {
			s.Notifier.Dispatch(n)
		}
	}
}

// reminderFor requests the advance reminder of the cycle due on due.
func reminderFor(l models.Lease, billID string, due time.Time) models.ReminderRequest {
	return models.ReminderRequest{LeaseID: l.ID, BillID: billID, SendDate: billing.SendDate(due)}
}

func requireLandlord(l *models.Lease, landlordID string) error {
	if l.LandlordID != landlordID {
		return ErrForbidden
	}
	return nil
}

func requireTenant(l *models.Lease, tenantID string) error {
	if l.TenantID != tenantID {
		return ErrForbidden
	}
	return nil
}

// restore returns an undo that writes back the lease as it was before a step.
func (s *DefaultLeaseService) restore(before models.Lease) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return s.Leases.Update(ctx, &before)
	}
}

func (s *DefaultLeaseService) GetLease(ctx context.Context, actorID, leaseID string) (*LeaseDetails, error) {
	l, err := s.loadLease(ctx, "GetLease", leaseID)
	if err != nil {
		return nil, err
	}
	if l.LandlordID != actorID && l.TenantID != actorID {
		return nil, ErrForbidden
	}

	bills, err := s.Bills.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, persistence("GetLease", err)
	}

	return &LeaseDetails{
		Lease:    *l,
		Bills:    bills,
		Schedule: billing.EntryFor(*l, bills, s.today()),
	}, nil
}
