package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voilajsx/appkit/core/email"
)

func validConfig() Config {
	return Config{
		Host:        "smtp.example.com",
		Port:        587,
		Username:    "user",
		Password:    "pass",
		TLSMode:     "starttls",
		SenderEmail: "noreply@example.com",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		c, err := New(validConfig())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("auth optional for open relays", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Username = ""
		cfg.Password = ""
		c, err := New(cfg)
		require.NoError(t, err)
		assert.Nil(t, c.auth)
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"unknown tls mode", func(c *Config) { c.TLSMode = "maybe" }},
		{"malformed sender", func(c *Config) { c.SenderEmail = "nope" }},
		{"malformed reply-to", func(c *Config) { c.ReplyTo = "nope@" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			_, err := New(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	t.Run("html body", func(t *testing.T) {
		t.Parallel()
		c, err := New(validConfig())
		require.NoError(t, err)

		raw := string(c.buildMessage(email.Message{
			To:       "user@example.com",
			Subject:  "Hello",
			BodyHTML: "<h1>Hi</h1>",
			BodyText: "Hi",
		}))

		assert.Contains(t, raw, "From: noreply@example.com\r\n")
		assert.Contains(t, raw, "To: user@example.com\r\n")
		assert.Contains(t, raw, "Subject: Hello\r\n")
		assert.Contains(t, raw, `Content-Type: text/html; charset="UTF-8"`)
		assert.True(t, strings.HasSuffix(raw, "\r\n<h1>Hi</h1>"))
	})

	t.Run("text fallback when html absent", func(t *testing.T) {
		t.Parallel()
		c, err := New(validConfig())
		require.NoError(t, err)

		raw := string(c.buildMessage(email.Message{
			To:       "user@example.com",
			Subject:  "Hello",
			BodyText: "plain words",
		}))

		assert.Contains(t, raw, `Content-Type: text/plain; charset="UTF-8"`)
		assert.Contains(t, raw, "plain words")
	})

	t.Run("message reply-to overrides configured one", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ReplyTo = "support@example.com"
		c, err := New(cfg)
		require.NoError(t, err)

		raw := string(c.buildMessage(email.Message{
			To:       "user@example.com",
			Subject:  "Hello",
			BodyText: "hi",
			ReplyTo:  "billing@example.com",
		}))
		assert.Contains(t, raw, "Reply-To: billing@example.com\r\n")
		assert.NotContains(t, raw, "support@example.com")
	})
}
