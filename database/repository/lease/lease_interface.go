package leaseRepo

import (
	"context"

	"rentwise/models"
)

// LeaseRepository defines methods for lease data access.
type LeaseRepository interface {
	// Create inserts a new lease.
	Create(ctx context.Context, lease *models.Lease) error
	// GetByID retrieves a lease by id; database.ErrNotFound when missing.
	GetByID(ctx context.Context, id string) (*models.Lease, error)
	// Update replaces the mutable fields of a lease.
	Update(ctx context.Context, lease *models.Lease) error
	// Delete removes a lease. Only used to compensate a failed assignment.
	Delete(ctx context.Context, id string) error
	// GetActiveByLandlord lists a landlord's active leases.
	GetActiveByLandlord(ctx context.Context, landlordID string) ([]models.Lease, error)
	// GetOpenByProperty returns the active or pending-end lease of a property, or nil.
	GetOpenByProperty(ctx context.Context, propertyID string) (*models.Lease, error)
}
