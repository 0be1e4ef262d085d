// Package postmark delivers email through the Postmark transactional API.
//
// The client implements the email.Sender interface on top of the
// mrz1836/postmark SDK. Opens and HTML link clicks are tracked by default;
// links in plain-text bodies are never rewritten.
//
// Basic usage:
//
//	cfg := postmark.Config{
//		ServerToken: os.Getenv("POSTMARK_SERVER_TOKEN"),
//		SenderEmail: "noreply@example.com",
//		ReplyTo:     "support@example.com",
//	}
//
//	sender, err := postmark.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	err = sender.Send(ctx, email.Message{
//		To:       "user@example.com",
//		Subject:  "Welcome",
//		BodyHTML: "<h1>Hello!</h1>",
//		Tag:      "welcome",
//	})
//
// The account token is only needed for account-level API calls and may be
// omitted for plain sending. API-level errors (a response with a non-zero
// error code) wrap email.ErrSendFailed like transport errors do, so callers
// classify both the same way.
package postmark
