// Package webhook provides reliable HTTP webhook delivery with automatic
// retries, exponential backoff, and HMAC payload signatures.
//
// A Sender marshals the payload to JSON, POSTs it to the endpoint, and
// retries transient failures (5xx responses, timeouts, network errors) with
// configurable backoff. Client errors are final, with the exception of 408
// and 429.
//
//	sender := webhook.NewSender()
//
//	err := sender.Send(ctx, "https://api.example.com/hooks", event,
//		webhook.WithTimeout(30*time.Second),
//		webhook.WithMaxRetries(3),
//		webhook.WithSignature("hook-secret"),
//	)
//
// When a signature secret is set, each request carries X-Webhook-Signature
// (hex HMAC-SHA256 over "<unix-timestamp>.<body>") and X-Webhook-Timestamp
// headers. Receivers verify with VerifySignature, which also rejects stale
// timestamps to limit replay windows.
package webhook
