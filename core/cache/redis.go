package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache implements Cache on a shared Redis deployment. Keys are
// namespaced with a prefix so Clear only touches this cache's entries.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an established Redis client. The prefix defaults to
// "appkit:cache:".
func NewRedis(client *redis.Client, prefix string) Cache {
	if prefix == "" {
		prefix = "appkit:cache:"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (r *redisCache) key(k string) string { return r.prefix + k }

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get failed: %w", err)
	}
	return v, true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set failed: %w", err)
	}
	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("cache: redis delete failed: %w", err)
	}
	return nil
}

func (r *redisCache) Has(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache: redis exists failed: %w", err)
	}
	return n > 0, nil
}

// Clear scans for the namespace prefix and deletes in batches, so it never
// blocks the server the way KEYS would.
func (r *redisCache) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 500).Iterator()
	batch := make([]string, 0, 500)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("cache: redis clear failed: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 500 {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache: redis scan failed: %w", err)
	}
	return flush()
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
