package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/voilajsx/appkit/core/config"
)

// Logger fans every record out to the configured transports and owns their
// flush/close lifecycle. The slog face is the primary API; the level methods
// are shorthands over it.
type Logger struct {
	log        *slog.Logger
	transports []Transport
}

type options struct {
	consoleOut io.Writer
	onError    func(error)
	extra      []Transport
}

// Option adjusts logger construction.
type Option func(*options)

// WithConsoleOutput redirects the console transport, typically to a buffer
// in tests.
func WithConsoleOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.consoleOut = w
		}
	}
}

// WithOnError installs a callback invoked with transport flush failures.
// The default writes them to stderr.
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// WithTransport registers an additional custom transport alongside the
// configured ones.
func WithTransport(t Transport) Option {
	return func(o *options) {
		if t != nil {
			o.extra = append(o.extra, t)
		}
	}
}

// New builds a logger from cfg. An invalid level is a startup error. A
// transport whose initialization fails is reported and skipped, never fatal:
// the logger degrades to whichever transports did come up, falling back to
// console-only when none did.
func New(ctx context.Context, cfg Config, opts ...Option) (*Logger, error) {
	o := &options{
		consoleOut: os.Stderr,
	}
	o.onError = func(err error) {
		fmt.Fprintf(o.consoleOut, "appkit/logger: %v\n", err)
	}
	for _, opt := range opts {
		opt(o)
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	// Bootstrap logger for reporting transport init failures before the
	// real logger exists.
	boot := slog.New(slog.NewTextHandler(o.consoleOut, nil))

	var transports []Transport

	if cfg.ConsoleEnabled {
		transports = append(transports, newConsoleTransport(o.consoleOut, level, cfg.Pretty, cfg.ServiceName))
	}

	if cfg.FileEnabled {
		if t, err := newFileTransport(cfg, level, o.onError); err != nil {
			boot.Warn("logging transport disabled", slog.String("transport", "file"), slog.Any("error", err))
		} else {
			transports = append(transports, t)
		}
	}

	if cfg.DatabaseURL != "" {
		if t, err := newDatabaseTransport(ctx, cfg, level, o.onError); err != nil {
			boot.Warn("logging transport disabled", slog.String("transport", "database"), slog.Any("error", err))
		} else {
			transports = append(transports, t)
		}
	}

	if cfg.HTTPURL != "" {
		if t, err := newHTTPTransport(cfg, level, o.onError); err != nil {
			boot.Warn("logging transport disabled", slog.String("transport", "http"), slog.Any("error", err))
		} else {
			transports = append(transports, t)
		}
	}

	if cfg.WebhookURL != "" {
		whLevel, err := ParseLevel(cfg.WebhookLevel)
		if err != nil {
			whLevel = slog.LevelError
		}
		if t, err := newWebhookTransport(cfg, whLevel, o.onError); err != nil {
			boot.Warn("logging transport disabled", slog.String("transport", "webhook"), slog.Any("error", err))
		} else {
			transports = append(transports, t)
		}
	}

	transports = append(transports, o.extra...)

	if len(transports) == 0 {
		boot.Warn("no logging transports initialized, falling back to console")
		transports = append(transports, newConsoleTransport(o.consoleOut, level, cfg.Pretty, cfg.ServiceName))
	}

	handlers := make([]slog.Handler, len(transports))
	for i, t := range transports {
		handlers[i] = t
	}

	return &Logger{
		log:        slog.New(slogmulti.Fanout(handlers...)),
		transports: transports,
	}, nil
}

// NewFromEnv loads the logging configuration from the environment and builds
// the logger. In development, console output defaults to pretty mode and the
// service name falls back to the executable name.
func NewFromEnv(ctx context.Context, opts ...Option) (*Logger, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if config.IsDevelopment() {
		cfg.Pretty = true
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = config.ServiceName()
	}
	return New(ctx, cfg, opts...)
}

// Slog returns the underlying slog.Logger for handing to libraries.
func (l *Logger) Slog() *slog.Logger { return l.log }

// With returns a slog.Logger carrying the given attributes on every record.
func (l *Logger) With(args ...any) *slog.Logger { return l.log.With(args...) }

func (l *Logger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log.Error(msg, args...) }

// Transports lists the names of the active transports.
func (l *Logger) Transports() []string {
	names := make([]string, len(l.transports))
	for i, t := range l.transports {
		names[i] = t.Name()
	}
	return names
}

// Flush forces every transport to write out its buffered entries.
func (l *Logger) Flush(ctx context.Context) error {
	var errs []error
	for _, t := range l.transports {
		if err := t.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Close flushes and shuts down every transport. The logger must not be used
// afterwards.
func (l *Logger) Close(ctx context.Context) error {
	var errs []error
	for _, t := range l.transports {
		if err := t.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name(), err))
		}
	}
	return errors.Join(errs...)
}
