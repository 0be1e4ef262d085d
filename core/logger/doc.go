// Package logger provides structured logging with multi-transport fanout,
// built on Go's standard slog package.
//
// A logger holds a set of independently configured transports. Every record
// is offered to each transport whose minimum level permits it; console
// output is written synchronously, while the file, database, HTTP and
// webhook transports buffer entries into batches flushed on a timer or when
// the batch reaches its configured size, whichever comes first. Batched
// flushes retry bounded times with exponential backoff on retriable
// failures (5xx, timeouts) and fail immediately on non-retriable ones.
//
// Transport initialization failures are never fatal: the logger degrades to
// whatever transports did initialize, falling back to console-only when
// none did. One failing sink never prevents delivery to the others.
//
// # Usage
//
//	log, err := logger.NewFromEnv(ctx)
//	if err != nil {
//		panic(err)
//	}
//	defer log.Close(ctx)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Configuration comes from VOILA_LOGGING_* environment variables (see
// Config). Batched transports are enabled by the presence of their target:
// VOILA_LOGGING_DATABASE_URL turns on the database transport,
// VOILA_LOGGING_HTTP_URL the HTTP collector, VOILA_LOGGING_WEBHOOK_URL the
// error alert webhook, and VOILA_LOGGING_FILE=true the rotating log file.
//
// No ordering is guaranteed across transports: a record may be durable in
// the database before or after it appears on the console.
package logger
