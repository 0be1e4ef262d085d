package logger_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voilajsx/appkit/core/logger"
)

func baseConfig() logger.Config {
	return logger.Config{
		Level:         "info",
		ServiceName:   "test-service",
		BatchSize:     10,
		FlushInterval: time.Hour,
	}
}

func TestNew_ConsoleFallbackWhenNothingConfigured(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.ConsoleEnabled = false

	log, err := logger.New(context.Background(), cfg)
	require.NoError(t, err)
	defer log.Close(context.Background())

	assert.Equal(t, []string{"console"}, log.Transports())
}

func TestNew_InvalidLevelIsFatal(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Level = "loud"

	_, err := logger.New(context.Background(), cfg)
	require.Error(t, err)
}

func TestNew_FailingTransportDegradesGracefully(t *testing.T) {
	t.Parallel()

	// A file path below a regular file cannot be created as a directory,
	// so the file transport fails to initialize.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.ConsoleEnabled = true
	cfg.FileEnabled = true
	cfg.FileDir = filepath.Join(blocker, "logs")

	log, err := logger.New(context.Background(), cfg, logger.WithConsoleOutput(&buf))
	require.NoError(t, err)
	defer log.Close(context.Background())

	assert.Equal(t, []string{"console"}, log.Transports())

	log.Info("still working")
	assert.Contains(t, buf.String(), "still working")
	assert.Contains(t, buf.String(), "logging transport disabled")
}

func TestLogger_ConsoleJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.ConsoleEnabled = true

	log, err := logger.New(context.Background(), cfg, logger.WithConsoleOutput(&buf))
	require.NoError(t, err)
	defer log.Close(context.Background())

	log.Info("order placed", logger.Component("checkout"), logger.Count("items", 2))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order placed", line["msg"])
	assert.Equal(t, "checkout", line["component"])
	assert.Equal(t, float64(2), line["items"])
	assert.Equal(t, "test-service", line["service"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.ConsoleEnabled = true
	cfg.Level = "warn"

	log, err := logger.New(context.Background(), cfg, logger.WithConsoleOutput(&buf))
	require.NoError(t, err)
	defer log.Close(context.Background())

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestFileTransport_WritesJSONLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := baseConfig()
	cfg.ConsoleEnabled = false
	cfg.FileEnabled = true
	cfg.FileDir = dir
	cfg.FileName = "test.log"

	log, err := logger.New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Contains(t, log.Transports(), "file")

	log.Info("first", logger.Component("worker"))
	log.Warn("second")

	require.NoError(t, log.Flush(context.Background()))
	require.NoError(t, log.Close(context.Background()))

	f, err := os.Open(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}

	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "test-service", entries[0]["service"])
	meta, ok := entries[0]["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "worker", meta["component"])
	assert.Equal(t, "second", entries[1]["message"])
	assert.Equal(t, "WARN", entries[1]["level"])
}

func TestHTTPTransport_BatchesAndAuth(t *testing.T) {
	t.Parallel()

	batches := make(chan []map[string]any, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var entries []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entries))
		batches <- entries
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	cfg := baseConfig()
	cfg.ConsoleEnabled = false
	cfg.HTTPURL = srv.URL
	cfg.HTTPToken = "sekrit"
	cfg.BatchSize = 3

	log, err := logger.New(context.Background(), cfg)
	require.NoError(t, err)
	defer log.Close(context.Background())

	require.Equal(t, []string{"http"}, log.Transports())

	log.Info("a")
	log.Info("b")
	log.Info("c")

	select {
	case batch := <-batches:
		require.Len(t, batch, 3, "full batch shipped in one POST")
		assert.Equal(t, "a", batch[0]["message"])
	case <-time.After(3 * time.Second):
		t.Fatal("expected a size-triggered batch POST")
	}
}

func TestHTTPTransport_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := baseConfig()
	cfg.ConsoleEnabled = false
	cfg.HTTPURL = srv.URL

	log, err := logger.New(context.Background(), cfg)
	require.NoError(t, err)
	defer log.Close(context.Background())

	log.Error("flaky backend")
	require.NoError(t, log.Flush(context.Background()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPTransport_ClientErrorFailsImmediately(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var flushErrs []error
	cfg := baseConfig()
	cfg.ConsoleEnabled = false
	cfg.HTTPURL = srv.URL

	log, err := logger.New(context.Background(), cfg,
		logger.WithOnError(func(err error) { flushErrs = append(flushErrs, err) }))
	require.NoError(t, err)
	defer log.Close(context.Background())

	log.Error("rejected")
	err = log.Flush(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
	assert.Contains(t, err.Error(), "401")
	require.NotEmpty(t, flushErrs)
}

func TestNew_InvalidHTTPURLSkipsTransport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.ConsoleEnabled = true
	cfg.HTTPURL = "://not-a-url"

	log, err := logger.New(context.Background(), cfg, logger.WithConsoleOutput(&buf))
	require.NoError(t, err)
	defer log.Close(context.Background())

	assert.Equal(t, []string{"console"}, log.Transports())
}

func TestWebhookTransport_OnlyErrorsAreDelivered(t *testing.T) {
	t.Parallel()

	payloads := make(chan map[string]any, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads <- p
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := baseConfig()
	cfg.ConsoleEnabled = false
	cfg.WebhookURL = srv.URL
	cfg.WebhookLevel = "error"
	cfg.BatchSize = 1

	log, err := logger.New(context.Background(), cfg)
	require.NoError(t, err)
	defer log.Close(context.Background())

	require.Equal(t, []string{"webhook"}, log.Transports())

	log.Info("routine")
	log.Error("outage detected")

	select {
	case p := <-payloads:
		assert.Equal(t, "test-service", p["service"])
		assert.Equal(t, float64(1), p["count"])
		entries, ok := p["entries"].([]any)
		require.True(t, ok)
		require.Len(t, entries, 1)
		first, ok := entries[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "outage detected", first["message"])
	case <-time.After(3 * time.Second):
		t.Fatal("expected webhook delivery for the error entry")
	}

	select {
	case p := <-payloads:
		t.Fatalf("unexpected extra delivery: %v", p)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLogger_WithCarriesAttrsToTransports(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.ConsoleEnabled = true

	log, err := logger.New(context.Background(), cfg, logger.WithConsoleOutput(&buf))
	require.NoError(t, err)
	defer log.Close(context.Background())

	reqLog := log.With("request_id", "req-42")
	reqLog.Info("handled")

	assert.True(t, strings.Contains(buf.String(), "req-42"))
}
