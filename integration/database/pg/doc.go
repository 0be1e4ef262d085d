// Package pg provides PostgreSQL connection management with retry logic and
// health checking, wrapping the pgx driver.
//
// Connect establishes a pgxpool with exponential backoff between attempts
// and verifies connectivity with a ping before returning, so transient
// network failures during startup do not take the application down:
//
//	pool, err := pg.Connect(ctx, pg.Config{
//		ConnectionString: os.Getenv("DATABASE_URL"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
// Healthcheck returns a probe function suitable for readiness endpoints.
package pg
