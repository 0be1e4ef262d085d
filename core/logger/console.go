package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// consoleTransport writes records synchronously to a terminal or stream.
// Pretty mode renders colorized, human-oriented output with errors
// highlighted; plain mode emits one JSON object per line for log shippers.
type consoleTransport struct {
	slog.Handler
}

func newConsoleTransport(w io.Writer, level slog.Level, pretty bool, service string) *consoleTransport {
	var h slog.Handler
	if pretty {
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	if service != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("service", service)})
	}
	return &consoleTransport{Handler: h}
}

func (*consoleTransport) Name() string { return "console" }

// Console writes are unbuffered; the lifecycle hooks are no-ops.
func (*consoleTransport) Flush(context.Context) error { return nil }
func (*consoleTransport) Close(context.Context) error { return nil }
