package billRepo

import (
	"context"
	"time"

	"rentwise/models"

	"github.com/shopspring/decimal"
)

// BillRepository defines methods for bill data access. Listings are ordered by due date ascending.
type BillRepository interface {
	Create(ctx context.Context, bill *models.Bill) error
	// Delete removes a bill. Only used to compensate a failed lifecycle write.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Bill, error)
	// UpdateStatus moves a bill from one status to another; database.ErrConflict if it is no longer in from.
	UpdateStatus(ctx context.Context, id string, from, to models.BillStatus, paidAt *time.Time, amountPaid *decimal.Decimal) error
	ListByLease(ctx context.Context, leaseID string) ([]models.Bill, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]models.Bill, error)
}
