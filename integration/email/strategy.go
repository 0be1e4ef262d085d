// Package email selects a mail delivery strategy from the environment.
//
// The active provider is inferred from which credentials are present, so
// switching providers is a deployment change, not a code change:
//
//   - SMTP_HOST set            -> SMTP
//   - POSTMARK_SERVER_TOKEN set -> Postmark
//   - neither                  -> file-based development sender
package email

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/voilajsx/appkit/core/config"
	coreemail "github.com/voilajsx/appkit/core/email"
	"github.com/voilajsx/appkit/integration/email/postmark"
	"github.com/voilajsx/appkit/integration/email/smtp"
)

// Strategy names as reported by Resolve.
const (
	StrategySMTP     = "smtp"
	StrategyPostmark = "postmark"
	StrategyDev      = "dev"
)

// DevDirEnv overrides the development sender's output directory.
const DevDirEnv = "VOILA_EMAIL_DEV_DIR"

// Resolve reports which strategy NewFromEnv would pick for the current
// environment without constructing anything.
func Resolve() string {
	switch {
	case os.Getenv("SMTP_HOST") != "":
		return StrategySMTP
	case os.Getenv("POSTMARK_SERVER_TOKEN") != "":
		return StrategyPostmark
	default:
		return StrategyDev
	}
}

// NewFromEnv builds the sender for the detected strategy. Presence of a
// credential commits to that provider: an incomplete provider config is an
// error, never a silent fallback to the dev sender.
func NewFromEnv(log *slog.Logger) (coreemail.Sender, error) {
	strategy := Resolve()
	if log != nil {
		log.Info("email strategy selected", slog.String("strategy", strategy))
	}

	switch strategy {
	case StrategySMTP:
		var cfg smtp.Config
		if err := config.Load(&cfg); err != nil {
			return nil, fmt.Errorf("load smtp config: %w", err)
		}
		return smtp.New(cfg)

	case StrategyPostmark:
		var cfg postmark.Config
		if err := config.Load(&cfg); err != nil {
			return nil, fmt.Errorf("load postmark config: %w", err)
		}
		return postmark.New(cfg)

	default:
		return coreemail.NewDevSender(os.Getenv(DevDirEnv)), nil
	}
}

// MustNewFromEnv is NewFromEnv that panics on error, for fail-fast startup.
func MustNewFromEnv(log *slog.Logger) coreemail.Sender {
	s, err := NewFromEnv(log)
	if err != nil {
		panic(err)
	}
	return s
}
