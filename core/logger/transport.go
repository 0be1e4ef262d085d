package logger

import (
	"context"
	"log/slog"
)

// Transport is a pluggable log sink. Every transport exposes a slog.Handler
// face for the fanout plus an explicit flush/close lifecycle. Write ordering
// across transports is not guaranteed; each sink drains independently.
type Transport interface {
	slog.Handler

	// Name identifies the transport (console, file, database, http, webhook).
	Name() string

	// Flush forces any buffered entries out to the sink.
	Flush(ctx context.Context) error

	// Close flushes remaining entries and releases sink resources. The
	// transport must not be written to afterwards.
	Close(ctx context.Context) error
}

// batchHandler adapts a batcher to the slog.Handler contract. It carries the
// handler-level attributes and group prefix accumulated through WithAttrs
// and WithGroup, and converts each record into an Entry for the batcher.
type batchHandler struct {
	b       *batcher
	min     slog.Level
	service string
	attrs   []slog.Attr
	groups  []string
}

func (h *batchHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *batchHandler) Handle(_ context.Context, r slog.Record) error {
	h.b.add(newEntry(r, h.service, h.attrs, h.groups))
	return nil
}

func (h *batchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	prefix := joinGroups(h.groups)
	clone.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *batchHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = make([]string, len(h.groups), len(h.groups)+1)
	copy(clone.groups, h.groups)
	clone.groups = append(clone.groups, name)
	return &clone
}
