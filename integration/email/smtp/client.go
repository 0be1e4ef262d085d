package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/voilajsx/appkit/core/email"
)

// Client implements email.Sender over the SMTP protocol. It is stateless
// between sends and safe for concurrent use.
type Client struct {
	config Config
	auth   smtp.Auth
}

// New validates the configuration and creates an SMTP sender.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	switch cfg.TLSMode {
	case "starttls", "tls", "plain":
	default:
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", email.ErrInvalidConfig)
	}
	if !email.ValidAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" && !email.ValidAddress(cfg.ReplyTo) {
		return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", email.ErrInvalidConfig)
	}

	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Client{config: cfg, auth: auth}, nil
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

// Send delivers one message over SMTP using the configured TLS mode.
func (c *Client) Send(ctx context.Context, msg email.Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrSendFailed, err)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	raw := c.buildMessage(msg)
	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	var err error
	switch c.config.TLSMode {
	case "tls":
		err = c.sendTLS(addr, msg.To, raw)
	case "starttls":
		err = c.sendSTARTTLS(addr, msg.To, raw)
	case "plain":
		err = c.sendPlain(addr, msg.To, raw)
	}
	if err != nil {
		return errors.Join(email.ErrSendFailed, err)
	}
	return nil
}

// buildMessage assembles the MIME message. HTML wins when both bodies are
// set; a text-only message goes out as plain text.
func (c *Client) buildMessage(msg email.Message) []byte {
	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = c.config.ReplyTo
	}

	contentType := `text/html; charset="UTF-8"`
	body := msg.BodyHTML
	if body == "" {
		contentType = `text/plain; charset="UTF-8"`
		body = msg.BodyText
	}

	var b strings.Builder
	writeHeader := func(k, v string) {
		if v != "" {
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(v)
			b.WriteString("\r\n")
		}
	}

	writeHeader("From", c.config.SenderEmail)
	writeHeader("To", msg.To)
	writeHeader("Reply-To", replyTo)
	writeHeader("Subject", msg.Subject)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%d@%s>", time.Now().UnixNano(), c.config.Host))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}

func (c *Client) sendTLS(addr, rcpt string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: c.config.Host})
	if err != nil {
		return fmt.Errorf("tls dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, rcpt, raw)
}

func (c *Client) sendSTARTTLS(addr, rcpt string, raw []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	return c.transact(client, rcpt, raw)
}

func (c *Client) sendPlain(addr, rcpt string, raw []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, rcpt, raw)
}

func (c *Client) transact(client *smtp.Client, rcpt string, raw []byte) error {
	if c.auth != nil {
		if err := client.Auth(c.auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}
	if err := client.Mail(c.config.SenderEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(rcpt); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is
	// already accepted at that point.
	_ = client.Quit()
	return nil
}
