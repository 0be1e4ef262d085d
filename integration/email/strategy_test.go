package email_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voilajsx/appkit/core/config"
	coreemail "github.com/voilajsx/appkit/core/email"
	emailstrategy "github.com/voilajsx/appkit/integration/email"
)

// clearProviderEnv unsets every variable the resolver inspects so tests
// don't inherit a strategy from the host environment.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_TLS_MODE",
		"POSTMARK_SERVER_TOKEN", "POSTMARK_ACCOUNT_TOKEN",
		"SENDER_EMAIL", "SUPPORT_EMAIL", emailstrategy.DevDirEnv,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	config.Reset()
}

func TestResolve(t *testing.T) {
	t.Run("defaults to dev", func(t *testing.T) {
		clearProviderEnv(t)
		assert.Equal(t, emailstrategy.StrategyDev, emailstrategy.Resolve())
	})

	t.Run("smtp host selects smtp", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("SMTP_HOST", "smtp.example.com")
		assert.Equal(t, emailstrategy.StrategySMTP, emailstrategy.Resolve())
	})

	t.Run("postmark token selects postmark", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("POSTMARK_SERVER_TOKEN", "token")
		assert.Equal(t, emailstrategy.StrategyPostmark, emailstrategy.Resolve())
	})

	t.Run("smtp wins when both are configured", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("POSTMARK_SERVER_TOKEN", "token")
		assert.Equal(t, emailstrategy.StrategySMTP, emailstrategy.Resolve())
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("dev sender without provider credentials", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv(emailstrategy.DevDirEnv, t.TempDir())

		sender, err := emailstrategy.NewFromEnv(nil)
		require.NoError(t, err)
		require.IsType(t, &coreemail.DevSender{}, sender)

		err = sender.Send(context.Background(), coreemail.Message{
			To:       "user@example.com",
			Subject:  "Hello",
			BodyText: "hi",
		})
		assert.NoError(t, err)
	})

	t.Run("smtp with complete config", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SENDER_EMAIL", "noreply@example.com")
		config.Reset()

		sender, err := emailstrategy.NewFromEnv(nil)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("incomplete smtp config fails instead of falling back", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("SMTP_HOST", "smtp.example.com")
		config.Reset()

		_, err := emailstrategy.NewFromEnv(nil)
		require.Error(t, err)
	})

	t.Run("postmark with complete config", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("POSTMARK_SERVER_TOKEN", "server-token")
		t.Setenv("SENDER_EMAIL", "noreply@example.com")
		config.Reset()

		sender, err := emailstrategy.NewFromEnv(nil)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})
}
