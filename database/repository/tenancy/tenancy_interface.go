package tenancyRepo

import "context"

// TenancyRepository closes out the booking and application records that led to a lease.
type TenancyRepository interface {
	// CompleteForTenant marks the tenant's open bookings and applications for
	// the property as completed and returns how many records changed.
	CompleteForTenant(ctx context.Context, tenantID, propertyID string) (int64, error)
}
