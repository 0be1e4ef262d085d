package logger

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/voilajsx/appkit/pkg/webhook"
)

// webhookTransport forwards error-level entries to an alerting endpoint.
// Delivery, signing, and retry policy are handled by pkg/webhook; this
// transport only shapes the payload and applies the level gate.
type webhookTransport struct {
	*batchHandler
	b       *batcher
	sender  *webhook.Sender
	url     string
	secret  string
	service string
}

func newWebhookTransport(cfg Config, level slog.Level, onError func(error)) (*webhookTransport, error) {
	u, err := url.Parse(cfg.WebhookURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("logger: invalid webhook URL %q", cfg.WebhookURL)
	}

	t := &webhookTransport{
		sender:  webhook.NewSender(),
		url:     cfg.WebhookURL,
		secret:  cfg.WebhookSecret,
		service: cfg.ServiceName,
	}
	// Alerts should leave quickly: small batches, short interval.
	interval := cfg.FlushInterval
	if interval <= 0 || interval > 2*time.Second {
		interval = 2 * time.Second
	}
	t.b = newBatcher(min(cfg.BatchSize, 20), interval, t.write, onError)
	t.batchHandler = &batchHandler{b: t.b, min: level, service: cfg.ServiceName}
	return t, nil
}

func (t *webhookTransport) write(ctx context.Context, entries []Entry) error {
	payload := map[string]any{
		"service": t.service,
		"count":   len(entries),
		"entries": entries,
	}

	opts := []webhook.Option{webhook.WithMaxRetries(2)}
	if t.secret != "" {
		opts = append(opts, webhook.WithSignature(t.secret))
	}

	if err := t.sender.Send(ctx, t.url, payload, opts...); err != nil {
		return fmt.Errorf("logger: webhook transport: %w", err)
	}
	return nil
}

func (*webhookTransport) Name() string { return "webhook" }

func (t *webhookTransport) Flush(ctx context.Context) error {
	return t.b.Flush(ctx)
}

func (t *webhookTransport) Close(ctx context.Context) error {
	return t.b.Close(ctx)
}
