// Package cache provides a uniform caching interface with in-memory and
// Redis backends.
//
// The Cache interface works on string keys and byte values with optional
// per-entry TTL. The in-memory backend is a thread-safe LRU with capacity
// bounds; the Redis backend delegates expiry to the server and namespaces
// keys with a configurable prefix.
//
//	c, err := cache.NewFromEnv(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	_ = c.Set(ctx, "greeting", []byte("hello"), time.Minute)
//	if v, ok, _ := c.Get(ctx, "greeting"); ok {
//		fmt.Println(string(v))
//	}
//
// NewFromEnv picks the Redis backend when REDIS_URL is set and falls back
// to the in-memory LRU otherwise. Structured values go through the JSON
// helpers:
//
//	_ = cache.SetJSON(ctx, c, "user:1", user, time.Hour)
//	user, ok, err := cache.GetJSON[User](ctx, c, "user:1")
//
// The generic LRUCache is also exported directly for callers that want a
// typed in-process cache without the byte-oriented interface.
package cache
