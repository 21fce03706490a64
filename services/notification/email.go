package notification

import (
	"context"
	"fmt"
	"time"

	"rentwise/models"

	"github.com/go-resty/resty/v2"
)

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailRequest struct {
	From    emailAddress   `json:"from"`
	To      []emailAddress `json:"to"`
	Subject string         `json:"subject"`
	Text    string         `json:"text"`
}

// EmailChannel sends transactional email through an HTTP mail API.
type EmailChannel struct {
	client *resty.Client
	from   string
}

func NewEmailChannel(baseURL, apiKey, from string) *EmailChannel {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetAuthToken(apiKey)
	return &EmailChannel{client: client, from: from}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Send(ctx context.Context, to *models.User, n models.Notification) error {
	if to.Email == "" {
		return ErrNoAddress
	}

	text := n.Message
	if n.Link != "" {
		text += "\n\n" + n.Link
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(emailRequest{
			From:    emailAddress{Email: c.from},
			To:      []emailAddress{{Email: to.Email, Name: to.FullName}},
			Subject: n.Title,
			Text:    text,
		}).
		Post("/send")
	if err != nil {
		return fmt.Errorf("EmailChannel: request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("EmailChannel: mail API returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
