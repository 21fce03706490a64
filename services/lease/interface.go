package lease

import (
	"context"
	"time"

	"rentwise/config"
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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LeaseService drives the lease lifecycle. Every mutating call commits its
// writes as one unit and only then notifies, schedules reminders and drops
// the landlord's cached schedule.
type LeaseService interface {
	Assign(ctx context.Context, landlordID string, in AssignInput) (*AssignResult, error)

	RequestRenewal(ctx context.Context, tenantID, leaseID string) (*models.Lease, error)
	ApproveRenewal(ctx context.Context, landlordID, leaseID string, in ApproveRenewalInput) (*RenewalResult, error)
	RejectRenewal(ctx context.Context, landlordID, leaseID, reason string) (*models.Lease, error)

	RequestEnd(ctx context.Context, tenantID, leaseID string, in EndInput) (*models.Lease, error)
	ApproveEnd(ctx context.Context, landlordID, leaseID string) (*models.Lease, error)
	RejectEnd(ctx context.Context, landlordID, leaseID, reason string) (*models.Lease, error)
	Terminate(ctx context.Context, landlordID, leaseID string, in EndInput) (*models.Lease, error)

	SubmitPayment(ctx context.Context, tenantID, billID string, amountPaid *decimal.Decimal) (*models.Bill, error)
	ConfirmPayment(ctx context.Context, landlordID, billID string, amountPaid *decimal.Decimal) (*models.Bill, error)

	GetLease(ctx context.Context, actorID, leaseID string) (*LeaseDetails, error)
}

// AssignInput is a landlord's request to place a tenant in a property.
type AssignInput struct {
	TenantID        string
	PropertyID      string
	StartDate       time.Time
	ContractEndDate time.Time
	WifiDueDay      int
	LatePaymentFee  decimal.Decimal
	ContractURL     string
}

type AssignResult struct {
	Lease models.Lease `json:"lease"`
	Bill  models.Bill  `json:"bill"`
}

type ApproveRenewalInput struct {
	SigningDate time.Time
	NewEndDate  time.Time
}

type RenewalResult struct {
	Lease models.Lease `json:"lease"`
	Bill  models.Bill  `json:"bill"`
}

// EndInput carries the end date and reason of an end request or termination.
type EndInput struct {
	EndDate time.Time
	Reason  string
}

type LeaseDetails struct {
	Lease    models.Lease         `json:"lease"`
	Bills    []models.Bill        `json:"bills"`
	Schedule models.ScheduleEntry `json:"schedule"`
}

// ScheduleInvalidator drops a landlord's cached billing schedule.
type ScheduleInvalidator interface {
	Invalidate(ctx context.Context, landlordID string)
}

// DefaultLeaseService implements LeaseService.
type DefaultLeaseService struct {
	Leases     leaseRepo.LeaseRepository
	Bills      billRepo.BillRepository
	Properties propertyRepo.PropertyRepository
	Users      userRepo.UserRepository
	Tenancy    tenancyRepo.TenancyRepository
	Txn        txn.Runner

	Notifier  notification.Dispatcher
	Reminders reminder.Scheduler
	Schedules ScheduleInvalidator

	Composer billing.Composer
	Policy   config.LeasePolicy
	// LinkBase prefixes the deep links placed in notifications.
	LinkBase string
	Now      func() time.Time
	Logger   *zap.Logger
}
