package lease

import (
	"context"
	"fmt"

	"rentwise/database/repository/txn"
	"rentwise/models"
	"rentwise/services/billing"

	"go.uber.org/zap"
)

// RequestRenewal flags an active lease for renewal on behalf of its tenant.
func (s *DefaultLeaseService) RequestRenewal(ctx context.Context, tenantID, leaseID string) (*models.Lease, error) {
	l, err := s.loadLease(ctx, "RequestRenewal", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireTenant(l, tenantID); err != nil {
		return nil, err
	}
	if l.Status != models.LeaseActive {
		return nil, &TransitionError{Op: "request renewal", State: string(l.Status)}
	}
	if l.RenewalRequested {
		return nil, &TransitionError{Op: "request renewal", State: "a renewal is already pending"}
	}

	now := s.now()
	l.RenewalRequested = true
	l.RenewalStatus = models.RenewalPending
	l.RenewalRequestedAt = &now
	l.UpdatedAt = now

	if err := s.run(ctx, "RequestRenewal", txn.Step{
		Name: "flag renewal",
		Do:   func(ctx context.Context) error { return s.Leases.Update(ctx, l) },
	}); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, l.LandlordID, []models.Notification{s.renewalRequestedMessage(*l)}, nil)
	return l, nil
}

// ApproveRenewal extends the contract and issues the renewal bill. The bill is
// due on the cycle after the tenant's last settled rent bill, or on the
// current contract end when there is none.
func (s *DefaultLeaseService) ApproveRenewal(ctx context.Context, landlordID, leaseID string, in ApproveRenewalInput) (*RenewalResult, error) {
	if in.SigningDate.IsZero() {
		return nil, invalid("signingDate", "is required")
	}
	if in.NewEndDate.IsZero() {
		return nil, invalid("newEndDate", "is required")
	}

	l, err := s.loadLease(ctx, "ApproveRenewal", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireLandlord(l, landlordID); err != nil {
		return nil, err
	}
	if l.Status != models.LeaseActive || !l.RenewalRequested {
		return nil, &TransitionError{Op: "approve renewal", State: "no renewal is pending"}
	}

	newEnd := calendarDate(in.NewEndDate)
	if l.ContractEndDate != nil && !newEnd.After(*l.ContractEndDate) {
		return nil, invalid("newEndDate", "must be after the current contract end date")
	}
	if !newEnd.After(l.StartDate) {
		return nil, invalid("newEndDate", "must be after the lease start date")
	}

	property, err := s.loadProperty(ctx, "ApproveRenewal", l.PropertyID)
	if err != nil {
		return nil, err
	}
	composition, err := s.Composer.Compose(billing.EventRenewal, property.Price)
	if err != nil {
		return nil, fmt.Errorf("ApproveRenewal: property %s: %w", property.ID, err)
	}

	bills, err := s.Bills.ListByLease(ctx, l.ID)
	if err != nil {
		return nil, persistence("ApproveRenewal", err)
	}
	due := billing.RenewalDueDate(*l, bills)

	before := *l
	now := s.now()
	signed := calendarDate(in.SigningDate)
	l.ContractEndDate = &newEnd
	l.RenewalRequested = false
	l.RenewalStatus = models.RenewalApproved
	l.RenewalSignedAt = &signed
	l.UpdatedAt = now

	bill := composition.NewBill(*l, due, now)

	if err := s.run(ctx, "ApproveRenewal",
		txn.Step{
			Name: "extend contract",
			Do:   func(ctx context.Context) error { return s.Leases.Update(ctx, l) },
			Undo: s.restore(before),
		},
		txn.Step{
			Name: "insert renewal bill",
			Do:   func(ctx context.Context) error { return s.Bills.Create(ctx, &bill) },
		},
	); err != nil {
		return nil, err
	}

	s.logger().Info("Lease renewed",
		zap.String("leaseId", l.ID),
		zap.Time("contractEndDate", newEnd),
		zap.Time("renewalDueDate", due))

	s.afterCommit(ctx, l.LandlordID,
		[]models.Notification{s.renewalApprovedMessage(*l), s.billIssuedMessage(*l, bill)},
		[]models.ReminderRequest{reminderFor(*l, bill.ID, bill.DueDate)})

	return &RenewalResult{Lease: *l, Bill: bill}, nil
}

// RejectRenewal clears the renewal request. Nothing else on the lease changes.
func (s *DefaultLeaseService) RejectRenewal(ctx context.Context, landlordID, leaseID, reason string) (*models.Lease, error) {
	l, err := s.loadLease(ctx, "RejectRenewal", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireLandlord(l, landlordID); err != nil {
		return nil, err
	}
	if !l.RenewalRequested {
		return nil, &TransitionError{Op: "reject renewal", State: "no renewal is pending"}
	}

	l.RenewalRequested = false
	l.RenewalStatus = models.RenewalRejected
	l.UpdatedAt = s.now()

	if err := s.run(ctx, "RejectRenewal", txn.Step{
		Name: "clear renewal",
		Do:   func(ctx context.Context) error { return s.Leases.Update(ctx, l) },
	}); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, l.LandlordID, []models.Notification{s.renewalRejectedMessage(*l, reason)}, nil)
	return l, nil
}
