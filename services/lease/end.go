package lease

import (
	"context"
	"errors"
	"strings"
	"time"

	"rentwise/database"
	"rentwise/database/repository/txn"
	"rentwise/models"

	"go.uber.org/zap"
)

// RequestEnd moves an active lease to pending_end on behalf of its tenant.
func (s *DefaultLeaseService) RequestEnd(ctx context.Context, tenantID, leaseID string, in EndInput) (*models.Lease, error) {
	if in.EndDate.IsZero() {
		return nil, invalid("endDate", "is required")
	}

	l, err := s.loadLease(ctx, "RequestEnd", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireTenant(l, tenantID); err != nil {
		return nil, err
	}
	if l.Status != models.LeaseActive {
		return nil, &TransitionError{Op: "request end", State: string(l.Status)}
	}

	endDate := calendarDate(in.EndDate)
	if endDate.Before(l.StartDate) {
		return nil, invalid("endDate", "must not be before the lease start date")
	}

	now := s.now()
	l.Status = models.LeasePendingEnd
	l.EndRequestedAt = &now
	l.EndRequestedDate = &endDate
	l.EndReason = strings.TrimSpace(in.Reason)
	l.UpdatedAt = now

	if err := s.run(ctx, "RequestEnd", txn.Step{
		Name: "mark pending end",
		Do:   func(ctx context.Context) error { return s.Leases.Update(ctx, l) },
	}); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, l.LandlordID, []models.Notification{s.endRequestedMessage(*l)}, nil)
	return l, nil
}

// ApproveEnd ends a lease whose tenant asked to leave, on the requested date.
func (s *DefaultLeaseService) ApproveEnd(ctx context.Context, landlordID, leaseID string) (*models.Lease, error) {
	l, err := s.loadLease(ctx, "ApproveEnd", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireLandlord(l, landlordID); err != nil {
		return nil, err
	}
	if l.Status != models.LeasePendingEnd {
		return nil, &TransitionError{Op: "approve end", State: string(l.Status)}
	}

	endDate := s.today()
	if l.EndRequestedDate != nil {
		endDate = *l.EndRequestedDate
	}
	if err := s.end(ctx, "ApproveEnd", l, endDate, l.EndReason); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, l.LandlordID, []models.Notification{s.endApprovedMessage(*l)}, nil)
	return l, nil
}

// RejectEnd returns a pending_end lease to active and clears the request.
func (s *DefaultLeaseService) RejectEnd(ctx context.Context, landlordID, leaseID, reason string) (*models.Lease, error) {
	l, err := s.loadLease(ctx, "RejectEnd", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireLandlord(l, landlordID); err != nil {
		return nil, err
	}
	if l.Status != models.LeasePendingEnd {
		return nil, &TransitionError{Op: "reject end", State: string(l.Status)}
	}

	l.Status = models.LeaseActive
	l.EndRequestedAt = nil
	l.EndRequestedDate = nil
	l.EndReason = ""
	l.UpdatedAt = s.now()

	if err := s.run(ctx, "RejectEnd", txn.Step{
		Name: "revert to active",
		Do:   func(ctx context.Context) error { return s.Leases.Update(ctx, l) },
	}); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, l.LandlordID, []models.Notification{s.endRejectedMessage(*l, reason)}, nil)
	return l, nil
}

// Terminate ends a lease on the landlord's initiative. End date and reason are mandatory.
func (s *DefaultLeaseService) Terminate(ctx context.Context, landlordID, leaseID string, in EndInput) (*models.Lease, error) {
	if in.EndDate.IsZero() {
		return nil, invalid("endDate", "is required")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, invalid("reason", "is required")
	}

	l, err := s.loadLease(ctx, "Terminate", leaseID)
	if err != nil {
		return nil, err
	}
	if err := requireLandlord(l, landlordID); err != nil {
		return nil, err
	}
	if !l.IsOpen() {
		return nil, &TransitionError{Op: "terminate", State: string(l.Status)}
	}

	endDate := calendarDate(in.EndDate)
	if endDate.Before(l.StartDate) {
		return nil, invalid("endDate", "must not be before the lease start date")
	}
	if err := s.end(ctx, "Terminate", l, endDate, reason); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, l.LandlordID, []models.Notification{s.terminatedMessage(*l)}, nil)
	return l, nil
}

// end closes the lease, frees the property and completes the tenant's
// bookings and applications for it, as one unit. l is updated in place.
func (s *DefaultLeaseService) end(ctx context.Context, op string, l *models.Lease, endDate time.Time, reason string) error {
	before := *l
	l.Status = models.LeaseEnded
	l.EndDate = &endDate
	l.EndReason = reason
	if l.RenewalRequested {
		l.RenewalStatus = models.RenewalRejected
	}
	l.RenewalRequested = false
	l.UpdatedAt = s.now()

	freed := false
	err := s.run(ctx, op,
		txn.Step{
			Name: "end lease",
			Do:   func(ctx context.Context) error { return s.Leases.Update(ctx, l) },
			Undo: s.restore(before),
		},
		txn.Step{
			Name: "mark property available",
			Do: func(ctx context.Context) error {
				err := s.Properties.SetStatus(ctx, l.PropertyID, models.PropertyOccupied, models.PropertyAvailable)
				if errors.Is(err, database.ErrConflict) {
					// Already available.
					return nil
				}
				freed = err == nil
				return err
			},
			Undo: func(ctx context.Context) error {
				if !freed {
					return nil
				}
				return s.Properties.SetStatus(ctx, l.PropertyID, models.PropertyAvailable, models.PropertyOccupied)
			},
		},
		txn.Step{
			Name: "complete bookings and applications",
			Do: func(ctx context.Context) error {
				n, err := s.Tenancy.CompleteForTenant(ctx, l.TenantID, l.PropertyID)
				if err == nil {
					s.logger().Debug("Tenancy records completed", zap.String("leaseId", l.ID), zap.Int64("count", n))
				}
				return err
			},
		},
	)
	if err != nil {
		*l = before
		return err
	}

	s.logger().Info("Lease ended",
		zap.String("op", op),
		zap.String("leaseId", l.ID),
		zap.Time("endDate", endDate))
	return nil
}
