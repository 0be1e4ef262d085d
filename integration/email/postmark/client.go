package postmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/voilajsx/appkit/core/email"
)

// Client implements email.Sender on top of the Postmark API.
type Client struct {
	client *postmark.Client
	config Config
}

// New validates the configuration and creates a Postmark sender.
func New(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", email.ErrInvalidConfig)
	}
	if !email.ValidAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" && !email.ValidAddress(cfg.ReplyTo) {
		return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", email.ErrInvalidConfig)
	}

	return &Client{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		config: cfg,
	}, nil
}

// MustNew is New that panics on invalid configuration, for fail-fast
// startup.
func MustNew(cfg Config) *Client {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Send delivers one message. Opens and HTML link clicks are tracked;
// plain-text links are left alone to avoid rewriting visible URLs.
func (c *Client) Send(ctx context.Context, msg email.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = c.config.ReplyTo
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       c.config.SenderEmail,
		ReplyTo:    replyTo,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.BodyHTML,
		TextBody:   msg.BodyText,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(email.ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			email.ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
