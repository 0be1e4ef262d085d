package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the uniform contract implemented by every backend. A zero TTL
// means the entry does not expire (in-memory) or has no server-side expiry
// (Redis).
type Cache interface {
	// Get returns the value for key. The second return reports presence;
	// expired entries are treated as absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Has reports whether key is present and unexpired.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// GetJSON fetches key and unmarshals it into T.
func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var out T

	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("cache: failed to decode %q: %w", key, err)
	}
	return out, true, nil
}

// SetJSON marshals value and stores it under key.
func SetJSON[T any](ctx context.Context, c Cache, key string, value T, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: failed to encode %q: %w", key, err)
	}
	return c.Set(ctx, key, raw, ttl)
}
