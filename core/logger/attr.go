package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return the zero Attr for nil or empty input, so call
// sites never need their own nil checks.

// Error creates an "error" attribute, or nothing for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem a record belongs to.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a lifecycle or domain event.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Action names the operation being performed.
func Action(name string) slog.Attr {
	return slog.String("action", name)
}

// Duration records how long an operation took.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed records the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID tags a record with a request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Count creates an integer counter attribute under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute, dropped when the value is nil.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
