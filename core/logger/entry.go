package logger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Entry is the wire form of a single log record as seen by the batched
// transports. Console output bypasses this type and renders slog records
// directly.
type Entry struct {
	ID      string         `json:"id"`
	Time    time.Time      `json:"timestamp"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Service string         `json:"service,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// newEntry flattens a slog record into an Entry. Handler-level attributes
// come first so record attributes can override them. Group names are joined
// into dotted keys.
func newEntry(r slog.Record, service string, preset []slog.Attr, groups []string) Entry {
	e := Entry{
		ID:      uuid.NewString(),
		Time:    r.Time,
		Level:   r.Level.String(),
		Message: r.Message,
		Service: service,
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	meta := make(map[string]any, len(preset)+r.NumAttrs())
	for _, a := range preset {
		flattenAttr(meta, "", a)
	}
	prefix := joinGroups(groups)
	r.Attrs(func(a slog.Attr) bool {
		flattenAttr(meta, prefix, a)
		return true
	})
	if len(meta) > 0 {
		e.Meta = meta
	}

	return e
}

func flattenAttr(meta map[string]any, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	v := a.Value.Resolve()
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if v.Kind() == slog.KindGroup {
		for _, child := range v.Group() {
			flattenAttr(meta, key, child)
		}
		return
	}
	meta[key] = v.Any()
}

func joinGroups(groups []string) string {
	out := ""
	for _, g := range groups {
		if g == "" {
			continue
		}
		if out == "" {
			out = g
		} else {
			out += "." + g
		}
	}
	return out
}
