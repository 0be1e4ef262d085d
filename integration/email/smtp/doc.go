// Package smtp delivers email through a standard SMTP server.
//
// The client implements the email.Sender interface over net/smtp with three
// connection modes: "starttls" (plain connection upgraded to TLS, the usual
// choice on port 587), "tls" (implicit TLS, port 465), and "plain"
// (unencrypted, for local relays and tests only).
//
// Basic usage:
//
//	cfg := smtp.Config{
//		Host:        "smtp.example.com",
//		Port:        587,
//		Username:    "mailer",
//		Password:    "app-password",
//		TLSMode:     "starttls",
//		SenderEmail: "noreply@example.com",
//	}
//
//	sender, err := smtp.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	err = sender.Send(ctx, email.Message{
//		To:       "user@example.com",
//		Subject:  "Welcome",
//		BodyHTML: "<h1>Hello!</h1>",
//	})
//
// Credentials may be left empty for unauthenticated relays. Configuration is
// validated in New so misconfiguration surfaces at startup, not on the first
// send. Messages with both bodies go out as HTML; text-only messages as
// plain text. A message-level ReplyTo overrides the configured one.
package smtp
