package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// fileTransport appends JSON lines to a log file with size-based rotation
// and retention-day cleanup, both delegated to lumberjack. Writes go through
// the shared batcher so one flush performs one file write.
type fileTransport struct {
	*batchHandler
	b   *batcher
	out *lumberjack.Logger
}

func newFileTransport(cfg Config, level slog.Level, onError func(error)) (*fileTransport, error) {
	if cfg.FileDir == "" {
		return nil, fmt.Errorf("logger: file transport requires a directory")
	}
	if err := os.MkdirAll(cfg.FileDir, 0o755); err != nil {
		return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
	}

	name := cfg.FileName
	if name == "" {
		name = "app.log"
	}

	out := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.FileDir, name),
		MaxSize:    cfg.FileMaxSizeMB,
		MaxAge:     cfg.FileRetentionDays,
		MaxBackups: 0,
	}

	t := &fileTransport{out: out}
	t.b = newBatcher(cfg.BatchSize, cfg.FlushInterval, t.write, onError)
	t.batchHandler = &batchHandler{b: t.b, min: level, service: cfg.ServiceName}
	return t, nil
}

func (t *fileTransport) write(_ context.Context, entries []Entry) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("logger: failed to encode entry: %w", err)
		}
	}
	if _, err := t.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("logger: file write failed: %w", err)
	}
	return nil
}

func (*fileTransport) Name() string { return "file" }

func (t *fileTransport) Flush(ctx context.Context) error {
	return t.b.Flush(ctx)
}

func (t *fileTransport) Close(ctx context.Context) error {
	err := t.b.Close(ctx)
	if cerr := t.out.Close(); err == nil {
		err = cerr
	}
	return err
}
