// Package email defines the sending contract shared by every delivery
// strategy and a development sender that writes messages to disk.
//
// The Sender interface is the whole surface consumers depend on:
//
//	type Sender interface {
//		Send(ctx context.Context, msg Message) error
//	}
//
// The integration/email package resolves a concrete Sender from
// environment-variable presence: SMTP when SMTP_HOST is set, Postmark when
// POSTMARK_SERVER_TOKEN is set, otherwise the development sender in this
// package writing .html and .json pairs into a local directory.
//
//	err = sender.Send(ctx, email.Message{
//		To:       "user@example.com",
//		Subject:  "Welcome",
//		BodyHTML: "<h1>Hello!</h1>",
//		Tag:      "welcome",
//	})
//
// Provider failures wrap ErrSendFailed and carry a human-readable cause
// derived from well-known provider error shapes (invalid API key, rate
// limit, connection refused).
package email
