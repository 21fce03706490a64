package propertyRepo

import (
	"context"

	"rentwise/models"
)

// PropertyRepository is the slice of property data the lease lifecycle needs.
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*models.Property, error)
	// SetStatus flips availability only if the property is currently in from;
	// otherwise it returns database.ErrConflict.
	SetStatus(ctx context.Context, id string, from, to models.PropertyStatus) error
}
