package lease

import (
	"context"
	"errors"

	"rentwise/database"
	"rentwise/database/repository/txn"
	"rentwise/models"
	"rentwise/services/billing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SubmitPayment records that the tenant paid a pending bill. The bill waits
// for the landlord's confirmation.
func (s *DefaultLeaseService) SubmitPayment(ctx context.Context, tenantID, billID string, amountPaid *decimal.Decimal) (*models.Bill, error) {
	if amountPaid != nil && !amountPaid.IsPositive() {
		return nil, invalid("amountPaid", "must be greater than zero")
	}

	b, err := s.loadBill(ctx, "SubmitPayment", billID)
	if err != nil {
		return nil, err
	}
	if b.TenantID != tenantID {
		return nil, ErrForbidden
	}
	if b.Status != models.BillPending {
		return nil, &TransitionError{Op: "submit payment", State: "bill is " + string(b.Status)}
	}

	if amountPaid == nil {
		total := b.Total()
		amountPaid = &total
	}

	if err := s.run(ctx, "SubmitPayment", txn.Step{
		Name: "mark pending confirmation",
		Do: func(ctx context.Context) error {
			return s.Bills.UpdateStatus(ctx, b.ID, models.BillPending, models.BillPendingConfirmation, nil, amountPaid)
		},
	}); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return nil, &TransitionError{Op: "submit payment", State: "bill changed concurrently"}
		}
		return nil, err
	}

	b.Status = models.BillPendingConfirmation
	b.AmountPaid = amountPaid
	s.afterCommit(ctx, b.LandlordID, []models.Notification{s.paymentSubmittedMessage(*b)}, nil)
	return b, nil
}

// ConfirmPayment marks a bill paid and schedules the reminder of the lease's next cycle.
func (s *DefaultLeaseService) ConfirmPayment(ctx context.Context, landlordID, billID string, amountPaid *decimal.Decimal) (*models.Bill, error) {
	if amountPaid != nil && !amountPaid.IsPositive() {
		return nil, invalid("amountPaid", "must be greater than zero")
	}

	b, err := s.loadBill(ctx, "ConfirmPayment", billID)
	if err != nil {
		return nil, err
	}
	if b.LandlordID != landlordID {
		return nil, ErrForbidden
	}
	if !b.IsOutstanding() {
		return nil, &TransitionError{Op: "confirm payment", State: "bill is " + string(b.Status)}
	}

	switch {
	case amountPaid != nil:
	case b.AmountPaid != nil:
		amountPaid = b.AmountPaid
	default:
		total := b.Total()
		amountPaid = &total
	}
	paidAt := s.now()
	from := b.Status

	if err := s.run(ctx, "ConfirmPayment", txn.Step{
		Name: "mark paid",
		Do: func(ctx context.Context) error {
			return s.Bills.UpdateStatus(ctx, b.ID, from, models.BillPaid, &paidAt, amountPaid)
		},
	}); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return nil, &TransitionError{Op: "confirm payment", State: "bill changed concurrently"}
		}
		return nil, err
	}

	b.Status = models.BillPaid
	b.PaidAt = &paidAt
	b.AmountPaid = amountPaid

	var reminders []models.ReminderRequest
	if next, ok := s.nextCycle(ctx, b.LeaseID); ok {
		reminders = append(reminders, next)
	}
	s.afterCommit(ctx, b.LandlordID, []models.Notification{s.paymentConfirmedMessage(*b)}, reminders)
	return b, nil
}

// nextCycle projects the next due date of an open lease after a payment.
func (s *DefaultLeaseService) nextCycle(ctx context.Context, leaseID string) (models.ReminderRequest, bool) {
	l, err := s.Leases.GetByID(ctx, leaseID)
	if err != nil || !l.IsOpen() {
		return models.ReminderRequest{}, false
	}
	bills, err := s.Bills.ListByLease(ctx, leaseID)
	if err != nil {
		s.logger().Warn("Could not project next cycle", zap.String("leaseId", leaseID), zap.Error(err))
		return models.ReminderRequest{}, false
	}

	p := billing.NextCycle(*l, bills, s.today())
	billID := ""
	if p.Basis == billing.BasisOutstanding && p.SourceBill != nil {
		billID = p.SourceBill.ID
	}
	return reminderFor(*l, billID, p.NextDueDate), true
}
