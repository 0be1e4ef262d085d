package email_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voilajsx/appkit/core/email"
)

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	valid := email.Message{
		To:       "user@example.com",
		Subject:  "Welcome",
		BodyHTML: "<h1>Hello</h1>",
	}

	t.Run("valid html message", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid.Validate())
	})

	t.Run("valid text only message", func(t *testing.T) {
		t.Parallel()
		msg := valid
		msg.BodyHTML = ""
		msg.BodyText = "Hello"
		assert.NoError(t, msg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*email.Message)
	}{
		{"missing recipient", func(m *email.Message) { m.To = "" }},
		{"malformed recipient", func(m *email.Message) { m.To = "not-an-address" }},
		{"missing subject", func(m *email.Message) { m.Subject = "   " }},
		{"missing body", func(m *email.Message) { m.BodyHTML = "" }},
		{"malformed reply-to", func(m *email.Message) { m.ReplyTo = "nope@" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := valid
			tt.mutate(&msg)
			err := msg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidMessage)
		})
	}
}

func TestValidAddress(t *testing.T) {
	t.Parallel()

	assert.True(t, email.ValidAddress("user@example.com"))
	assert.True(t, email.ValidAddress("first.last+tag@sub.example.co"))
	assert.False(t, email.ValidAddress(""))
	assert.False(t, email.ValidAddress("user@localhost"))
	assert.False(t, email.ValidAddress("user example.com"))
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	t.Run("writes html body and metadata pair", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.Message{
			To:       "user@example.com",
			Subject:  "Welcome Aboard",
			BodyHTML: "<h1>Hello</h1>",
			Tag:      "welcome",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = e.Name()
			case ".json":
				jsonFile = e.Name()
			}
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)
		assert.Contains(t, htmlFile, "welcome")

		body, err := os.ReadFile(filepath.Join(dir, htmlFile))
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hello</h1>", string(body))

		meta, err := os.ReadFile(filepath.Join(dir, jsonFile))
		require.NoError(t, err)
		var decoded map[string]string
		require.NoError(t, json.Unmarshal(meta, &decoded))
		assert.Equal(t, "user@example.com", decoded["to"])
		assert.Equal(t, "Welcome Aboard", decoded["subject"])
		assert.Equal(t, "welcome", decoded["tag"])
	})

	t.Run("text body gets txt extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.Message{
			To:       "user@example.com",
			Subject:  "Plain",
			BodyText: "just text",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)

		var found bool
		for _, e := range entries {
			if filepath.Ext(e.Name()) == ".txt" {
				found = true
			}
		}
		assert.True(t, found, "expected a .txt body file")
	})

	t.Run("subject used when tag is empty", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.Message{
			To:       "user@example.com",
			Subject:  "Password Reset!",
			BodyHTML: "<p>reset</p>",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Name(), "password_reset")
	})

	t.Run("rejects invalid message before touching disk", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "never_created")
		sender := email.NewDevSender(dir)

		err := sender.Send(context.Background(), email.Message{To: "user@example.com"})
		require.ErrorIs(t, err, email.ErrInvalidMessage)

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestHumanizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "invalid api key",
			err:  errors.New("422 Unprocessable: Invalid API key provided"),
			want: "invalid API key - check the provider token",
		},
		{
			name: "rate limit",
			err:  errors.New("429 rate limit exceeded"),
			want: "rate limit exceeded - retry later or upgrade the plan",
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:587: connection refused"),
			want: "provider unreachable - check network and host settings",
		},
		{
			name: "unknown passes through",
			err:  errors.New("something exotic happened"),
			want: "something exotic happened",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := email.HumanizeError(tt.err)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.True(t, strings.Contains(got, tt.want) || got == tt.want,
				"got %q, want %q", got, tt.want)
		})
	}
}
