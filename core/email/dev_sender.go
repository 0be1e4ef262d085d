package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender saves messages as .html and .json file pairs instead of
// delivering them, for local development and tests.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender writing into dir. The directory
// is created on first send.
func NewDevSender(dir string) *DevSender {
	if dir == "" {
		dir = "./dev_emails"
	}
	return &DevSender{dir: dir}
}

type devMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	ReplyTo   string `json:"reply_to,omitempty"`
}

// Send writes the message body and a metadata sidecar to the directory.
// Filenames are timestamp-prefixed for chronological listing.
func (d *DevSender) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := now.Format("2006_01_02_150405") + "_" + safeFilename(identifier)

	body := msg.BodyHTML
	ext := ".html"
	if body == "" {
		body = msg.BodyText
		ext = ".txt"
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+ext), []byte(body), 0o644); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
	}

	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
		ReplyTo:   msg.ReplyTo,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrSendFailed, err)
	}

	return nil
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func safeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameRe.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
