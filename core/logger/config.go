package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config declares every logging setting the toolkit reads from the
// environment. The console transport is on by default; the batched
// transports are enabled by the presence of their target setting (a file
// flag, a database URL, an HTTP endpoint, a webhook endpoint).
type Config struct {
	Level         string        `env:"VOILA_LOGGING_LEVEL" envDefault:"info"`
	ServiceName   string        `env:"VOILA_SERVICE_NAME"`
	BatchSize     int           `env:"VOILA_LOGGING_BATCH_SIZE" envDefault:"100"`
	FlushInterval time.Duration `env:"VOILA_LOGGING_FLUSH_INTERVAL" envDefault:"5s"`

	ConsoleEnabled bool `env:"VOILA_LOGGING_CONSOLE" envDefault:"true"`
	Pretty         bool `env:"VOILA_LOGGING_PRETTY"`

	FileEnabled       bool   `env:"VOILA_LOGGING_FILE"`
	FileDir           string `env:"VOILA_LOGGING_DIR" envDefault:"./logs"`
	FileName          string `env:"VOILA_LOGGING_FILE_NAME" envDefault:"app.log"`
	FileMaxSizeMB     int    `env:"VOILA_LOGGING_FILE_MAX_SIZE_MB" envDefault:"50"`
	FileRetentionDays int    `env:"VOILA_LOGGING_FILE_RETENTION_DAYS" envDefault:"7"`

	DatabaseURL   string `env:"VOILA_LOGGING_DATABASE_URL"`
	DatabaseTable string `env:"VOILA_LOGGING_DATABASE_TABLE" envDefault:"logs"`

	HTTPURL   string `env:"VOILA_LOGGING_HTTP_URL"`
	HTTPToken string `env:"VOILA_LOGGING_HTTP_TOKEN"`

	WebhookURL    string `env:"VOILA_LOGGING_WEBHOOK_URL"`
	WebhookSecret string `env:"VOILA_LOGGING_WEBHOOK_SECRET"`
	WebhookLevel  string `env:"VOILA_LOGGING_WEBHOOK_LEVEL" envDefault:"error"`
}

// ParseLevel converts a level name into a slog.Level. Accepts debug, info,
// warn/warning and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}
