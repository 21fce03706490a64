package notification

import (
	"context"
	"errors"

	"rentwise/models"
)

// ErrNoAddress is returned by a channel when the recipient has no address for it.
var ErrNoAddress = errors.New("recipient has no address for channel")

// Dispatcher accepts notifications for delivery. Dispatch never blocks the caller.
type Dispatcher interface {
	Dispatch(n models.Notification)
}

// Channel delivers one notification over a single transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, to *models.User, n models.Notification) error
}

// UserLookup resolves a recipient id to its contact details.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}
