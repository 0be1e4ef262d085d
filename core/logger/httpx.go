package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// httpTransport ships log batches as one JSON array per POST to a remote
// collector (Datadog/Elasticsearch/Splunk-shaped endpoints). Server errors
// and timeouts are retried with exponential backoff; client errors fail the
// batch immediately.
type httpTransport struct {
	*batchHandler
	b      *batcher
	client *http.Client
	url    string
	token  string
}

const (
	httpMaxRetries   = 3
	httpRetryBackoff = 500 * time.Millisecond
	httpFlushTimeout = 10 * time.Second
)

// errNonRetriable marks HTTP responses that must not be repeated.
var errNonRetriable = errors.New("non-retriable response")

func newHTTPTransport(cfg Config, level slog.Level, onError func(error)) (*httpTransport, error) {
	u, err := url.Parse(cfg.HTTPURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("logger: invalid http transport URL %q", cfg.HTTPURL)
	}

	t := &httpTransport{
		client: &http.Client{Timeout: httpFlushTimeout},
		url:    cfg.HTTPURL,
		token:  cfg.HTTPToken,
	}
	t.b = newBatcher(cfg.BatchSize, cfg.FlushInterval, t.write, onError)
	t.batchHandler = &batchHandler{b: t.b, min: level, service: cfg.ServiceName}
	return t, nil
}

func (t *httpTransport) write(ctx context.Context, entries []Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("logger: failed to encode batch: %w", err)
	}

	for attempt := 0; attempt <= httpMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(httpRetryBackoff << (attempt - 1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = t.post(ctx, payload)
		if err == nil {
			return nil
		}
		if errors.Is(err, errNonRetriable) {
			return fmt.Errorf("logger: http transport: %w", err)
		}
	}
	return fmt.Errorf("logger: http transport failed after %d retries: %w", httpMaxRetries, err)
}

func (t *httpTransport) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", errNonRetriable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		// Network failures and client timeouts are retriable.
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if retriableStatus(resp.StatusCode) {
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return fmt.Errorf("%w: status %d: %s", errNonRetriable, resp.StatusCode, bytes.TrimSpace(body))
}

// retriableStatus reports whether the collector's response justifies another
// attempt: any 5xx, plus request timeout and rate limiting.
func retriableStatus(code int) bool {
	return code >= 500 || code == http.StatusRequestTimeout || code == http.StatusTooManyRequests
}

func (*httpTransport) Name() string { return "http" }

func (t *httpTransport) Flush(ctx context.Context) error {
	return t.b.Flush(ctx)
}

func (t *httpTransport) Close(ctx context.Context) error {
	return t.b.Close(ctx)
}
