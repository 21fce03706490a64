package lease

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentwise/database"
	"rentwise/database/repository/txn"
	"rentwise/models"
	"rentwise/services/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Assign creates an active lease, its move-in bill and marks the property
// occupied. All three writes commit together.
func (s *DefaultLeaseService) Assign(ctx context.Context, landlordID string, in AssignInput) (*AssignResult, error) {
	if err := s.validateAssign(in); err != nil {
		return nil, err
	}

	property, err := s.loadProperty(ctx, "Assign", in.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.LandlordID != landlordID {
		return nil, ErrForbidden
	}
	if property.Status == models.PropertyOccupied {
		return nil, ErrPropertyOccupied
	}
	open, err := s.Leases.GetOpenByProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, persistence("Assign", err)
	}
	if open != nil {
		return nil, ErrPropertyOccupied
	}

	tenant, err := s.Users.GetByID(ctx, in.TenantID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, invalid("tenantId", "tenant not found")
	}
	if err != nil {
		return nil, persistence("Assign", err)
	}
	if !tenant.IdentityVerified {
		return nil, invalid("tenantId", "tenant identity is not verified")
	}

	composition, err := s.Composer.Compose(billing.EventMoveIn, property.Price)
	if err != nil {
		return nil, fmt.Errorf("Assign: property %s: %w", property.ID, err)
	}

	now := s.now()
	start := calendarDate(in.StartDate)
	end := calendarDate(in.ContractEndDate)
	lease := models.Lease{
		ID:                  uuid.New().String(),
		TenantID:            tenant.ID,
		LandlordID:          landlordID,
		PropertyID:          property.ID,
		TenantName:          tenant.FullName,
		PropertyTitle:       property.Title,
		StartDate:           start,
		ContractEndDate:     &end,
		Status:              models.LeaseActive,
		SecurityDeposit:     composition.SecurityDeposit,
		SecurityDepositUsed: decimal.Zero,
		LatePaymentFee:      in.LatePaymentFee,
		WifiDueDay:          in.WifiDueDay,
		ContractURL:         strings.TrimSpace(in.ContractURL),
		RenewalStatus:       models.RenewalNone,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	bill := composition.NewBill(lease, start, now)

	err = s.run(ctx, "Assign",
		txn.Step{
			Name: "insert lease",
			Do:   func(ctx context.Context) error { return s.Leases.Create(ctx, &lease) },
			Undo: func(ctx context.Context) error { return s.Leases.Delete(ctx, lease.ID) },
		},
		txn.Step{
			Name: "insert move-in bill",
			Do:   func(ctx context.Context) error { return s.Bills.Create(ctx, &bill) },
			Undo: func(ctx context.Context) error { return s.Bills.Delete(ctx, bill.ID) },
		},
		txn.Step{
			Name: "mark property occupied",
			Do: func(ctx context.Context) error {
				err := s.Properties.SetStatus(ctx, property.ID, models.PropertyAvailable, models.PropertyOccupied)
				if errors.Is(err, database.ErrConflict) {
					return ErrPropertyOccupied
				}
				return err
			},
		},
	)
	if err != nil {
		if errors.Is(err, ErrPropertyOccupied) {
			return nil, ErrPropertyOccupied
		}
		return nil, err
	}

	s.logger().Info("Lease assigned",
		zap.String("leaseId", lease.ID),
		zap.String("propertyId", property.ID),
		zap.String("tenantId", tenant.ID),
		zap.String("moveInTotal", bill.Total().String()))

	s.afterCommit(ctx, landlordID,
		[]models.Notification{s.leaseAssignedMessage(lease, bill)},
		[]models.ReminderRequest{reminderFor(lease, bill.ID, bill.DueDate)})

	return &AssignResult{Lease: lease, Bill: bill}, nil
}

func (s *DefaultLeaseService) validateAssign(in AssignInput) error {
	switch {
	case strings.TrimSpace(in.TenantID) == "":
		return invalid("tenantId", "is required")
	case strings.TrimSpace(in.PropertyID) == "":
		return invalid("propertyId", "is required")
	case in.StartDate.IsZero():
		return invalid("startDate", "is required")
	case in.ContractEndDate.IsZero():
		return invalid("contractEndDate", "is required")
	}

	start := calendarDate(in.StartDate)
	end := calendarDate(in.ContractEndDate)
	months := s.Policy.MinContractMonths
	if minEnd := billing.AddMonths(start, months); end.Before(minEnd) {
		return invalid("contractEndDate", fmt.Sprintf("must be at least %d months after the start date", months))
	}

	if in.WifiDueDay < 1 || in.WifiDueDay > 31 {
		return invalid("wifiDueDay", "must be between 1 and 31")
	}
	if !in.LatePaymentFee.IsPositive() {
		return invalid("latePaymentFee", "must be greater than zero")
	}
	if strings.TrimSpace(in.ContractURL) == "" {
		return invalid("contractUrl", "a signed contract document is required")
	}
	return nil
}
