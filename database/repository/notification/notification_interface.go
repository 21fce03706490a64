package notificationRepo

import (
	"context"

	"rentwise/models"
)

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
}
