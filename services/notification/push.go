package notification

import (
	"context"
	"fmt"

	"rentwise/models"

	"firebase.google.com/go/v4/messaging"
)

// FCMSender is the part of *messaging.Client used for pushes.
type FCMSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushChannel sends the notification to the recipient's device through FCM.
type PushChannel struct {
	Client FCMSender
}

func (c *PushChannel) Name() string { return "push" }

func (c *PushChannel) Send(ctx context.Context, to *models.User, n models.Notification) error {
	if c.Client == nil || to.FCMToken == "" {
		return ErrNoAddress
	}

	msg := &messaging.Message{
		Token: to.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type": n.Type,
			"link": n.Link,
			"role": to.Role,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	if _, err := c.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("PushChannel: failed to send FCM message to %s: %w", to.ID, err)
	}
	return nil
}
