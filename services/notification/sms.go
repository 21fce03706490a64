package notification

import (
	"context"
	"fmt"
	"time"

	"rentwise/models"

	"github.com/go-resty/resty/v2"
)

type smsRequest struct {
	APIKey     string `json:"apikey"`
	Number     string `json:"number"`
	Message    string `json:"message"`
	SenderName string `json:"sendername,omitempty"`
}

// SMSChannel posts text messages to an HTTP SMS gateway.
type SMSChannel struct {
	client     *resty.Client
	apiKey     string
	senderName string
}

func NewSMSChannel(baseURL, apiKey, senderName string) *SMSChannel {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetHeader("Content-Type", "application/json")
	return &SMSChannel{client: client, apiKey: apiKey, senderName: senderName}
}

func (c *SMSChannel) Name() string { return "sms" }

func (c *SMSChannel) Send(ctx context.Context, to *models.User, n models.Notification) error {
	if to.PhoneNumber == "" {
		return ErrNoAddress
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(smsRequest{
			APIKey:     c.apiKey,
			Number:     to.PhoneNumber,
			Message:    fmt.Sprintf("%s: %s", n.Title, n.Message),
			SenderName: c.senderName,
		}).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("SMSChannel: request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("SMSChannel: gateway returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
