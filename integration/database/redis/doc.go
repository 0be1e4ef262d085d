// Package redis provides Redis client initialization with URL validation,
// retry logic and health checking, wrapping the go-redis client.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: os.Getenv("REDIS_URL"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URL schemes are supported. Connect
// verifies connectivity with a ping before returning.
package redis
