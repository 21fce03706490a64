package notification

import (
	"context"

	notificationRepo "rentwise/database/repository/notification"
	"rentwise/models"
)

// InAppChannel stores the notification for the recipient's inbox.
type InAppChannel struct {
	Repo notificationRepo.NotificationRepository
}

func (c *InAppChannel) Name() string { return "in_app" }

func (c *InAppChannel) Send(ctx context.Context, to *models.User, n models.Notification) error {
	n.Recipient = to.ID
	return c.Repo.Create(ctx, &n)
}
