package logger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voilajsx/appkit/integration/database/pg"
)

// identRe restricts the configurable table name to a plain SQL identifier,
// since it is interpolated into DDL and INSERT statements.
var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// databaseTransport persists log batches into a Postgres table, created on
// demand. Each flush is one multi-row INSERT with bounded retry on
// retriable failures.
type databaseTransport struct {
	*batchHandler
	b     *batcher
	pool  *pgxpool.Pool
	table string
}

const (
	dbMaxRetries   = 3
	dbRetryBackoff = 500 * time.Millisecond
	dbFlushTimeout = 10 * time.Second
)

func newDatabaseTransport(ctx context.Context, cfg Config, level slog.Level, onError func(error)) (*databaseTransport, error) {
	table := cfg.DatabaseTable
	if table == "" {
		table = "logs"
	}
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("logger: invalid log table name %q", table)
	}

	pool, err := pg.Connect(ctx, pg.Config{ConnectionString: cfg.DatabaseURL})
	if err != nil {
		return nil, fmt.Errorf("logger: database transport connect failed: %w", err)
	}

	t := &databaseTransport{pool: pool, table: table}
	if err := t.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	t.b = newBatcher(cfg.BatchSize, cfg.FlushInterval, t.write, onError)
	t.batchHandler = &batchHandler{b: t.b, min: level, service: cfg.ServiceName}
	return t, nil
}

func (t *databaseTransport) ensureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		ts TIMESTAMPTZ NOT NULL,
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		service TEXT,
		meta JSONB
	)`, t.table)
	if _, err := t.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("logger: failed to ensure log table: %w", err)
	}
	return nil
}

func (t *databaseTransport) write(ctx context.Context, entries []Entry) error {
	sql := insertStatement(t.table, len(entries))
	args := make([]any, 0, len(entries)*6)
	for _, e := range entries {
		var meta []byte
		if e.Meta != nil {
			meta, _ = json.Marshal(e.Meta)
		}
		args = append(args, e.ID, e.Time, e.Level, e.Message, e.Service, meta)
	}

	var err error
	for attempt := 0; attempt <= dbMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(dbRetryBackoff << (attempt - 1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		wctx, cancel := context.WithTimeout(ctx, dbFlushTimeout)
		_, err = t.pool.Exec(wctx, sql, args...)
		cancel()

		if err == nil {
			return nil
		}
		if !retriableDBError(err) {
			return fmt.Errorf("logger: database write failed: %w", err)
		}
	}
	return fmt.Errorf("logger: database write failed after %d retries: %w", dbMaxRetries, err)
}

// insertStatement builds a multi-row INSERT for n entries with six columns
// per row.
func insertStatement(table string, n int) string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (id, ts, level, message, service, meta) VALUES ")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
	}
	return sb.String()
}

// retriableDBError reports whether a failed write is worth retrying:
// timeouts, network failures, and errors pgx itself marks as safe.
func retriableDBError(err error) bool {
	if err == nil {
		return false
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func (*databaseTransport) Name() string { return "database" }

func (t *databaseTransport) Flush(ctx context.Context) error {
	return t.b.Flush(ctx)
}

func (t *databaseTransport) Close(ctx context.Context) error {
	err := t.b.Close(ctx)
	t.pool.Close()
	return err
}
