package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrDeliveryFailed wraps every unsuccessful delivery outcome.
var ErrDeliveryFailed = errors.New("webhook: delivery failed")

// Sender delivers JSON webhooks. The zero value is not usable; construct
// with NewSender. A Sender is safe for concurrent use and should be shared
// to reuse its connection pool.
type Sender struct {
	client *http.Client
}

// SenderOption configures a Sender at construction time.
type SenderOption func(*Sender)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) SenderOption {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

func NewSender(opts ...SenderOption) *Sender {
	s := &Sender{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type sendOptions struct {
	timeout    time.Duration
	maxRetries int
	secret     string
	backoff    Backoff
	headers    map[string]string
}

// Option configures a single Send call.
type Option func(*sendOptions)

// WithTimeout bounds each delivery attempt.
func WithTimeout(d time.Duration) Option {
	return func(o *sendOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithMaxRetries sets how many times a retriable failure is attempted again.
func WithMaxRetries(n int) Option {
	return func(o *sendOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithSignature signs the payload with the given secret.
func WithSignature(secret string) Option {
	return func(o *sendOptions) { o.secret = secret }
}

// WithBackoff replaces the retry backoff strategy.
func WithBackoff(b Backoff) Option {
	return func(o *sendOptions) {
		if b != nil {
			o.backoff = b
		}
	}
}

// WithHeader adds a custom header to every attempt.
func WithHeader(key, value string) Option {
	return func(o *sendOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// Send marshals payload to JSON and POSTs it to url. Retriable failures
// (5xx, 408, 429, timeouts, network errors) are retried up to the configured
// budget with backoff; other client errors fail immediately. All attempts of
// one Send share an X-Delivery-ID header so receivers can deduplicate.
func (s *Sender) Send(ctx context.Context, url string, payload any, opts ...Option) error {
	o := sendOptions{
		timeout:    10 * time.Second,
		maxRetries: 3,
		backoff:    DefaultBackoff,
	}
	for _, opt := range opts {
		opt(&o)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrDeliveryFailed, err)
	}

	deliveryID := uuid.NewString()

	var lastErr error
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(o.backoff.Next(attempt - 1)):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrDeliveryFailed, ctx.Err())
			}
		}

		retriable, err := s.attempt(ctx, url, body, deliveryID, o)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retriable {
			return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrDeliveryFailed, o.maxRetries+1, lastErr)
}

func (s *Sender) attempt(ctx context.Context, url string, body []byte, deliveryID string, o sendOptions) (retriable bool, err error) {
	actx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-ID", deliveryID)
	if o.secret != "" {
		now := time.Now()
		req.Header.Set(HeaderTimestamp, strconv.FormatInt(now.Unix(), 10))
		req.Header.Set(HeaderSignature, Sign(o.secret, body, now))
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return true, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err = fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))

	switch {
	case resp.StatusCode >= 500,
		resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusTooManyRequests:
		return true, err
	default:
		return false, err
	}
}
