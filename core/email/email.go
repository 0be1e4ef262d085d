package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Message is the value object handed to a Sender. Nothing is retained after
// Send returns.
type Message struct {
	To       string
	Subject  string
	BodyHTML string
	BodyText string
	ReplyTo  string
	Tag      string
}

// Sender delivers a single message through the chosen strategy.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// addressRe is a pragmatic address check; real validation is the receiving
// server's job.
var addressRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether s looks like a deliverable email address.
func ValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

// Validate checks that the message is well-formed enough to hand to any
// provider.
func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !ValidAddress(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.BodyHTML == "" && m.BodyText == "" {
		return fmt.Errorf("%w: message requires an HTML or text body", ErrInvalidMessage)
	}
	if m.ReplyTo != "" && !ValidAddress(m.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidMessage)
	}
	return nil
}
