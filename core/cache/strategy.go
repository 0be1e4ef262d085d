package cache

import (
	"context"

	"github.com/voilajsx/appkit/core/config"
	redisdb "github.com/voilajsx/appkit/integration/database/redis"
)

// Config selects and tunes the cache backend from the environment.
type Config struct {
	RedisURL string `env:"REDIS_URL"`
	Prefix   string `env:"VOILA_CACHE_PREFIX" envDefault:"appkit:cache:"`
	Capacity int    `env:"VOILA_CACHE_CAPACITY" envDefault:"1024"`
}

// NewFromEnv builds a cache using the backend implied by the environment:
// Redis when REDIS_URL is set, the in-memory LRU otherwise.
func NewFromEnv(ctx context.Context) (Cache, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(ctx, cfg)
}

// New builds a cache from an explicit Config.
func New(ctx context.Context, cfg Config) (Cache, error) {
	if cfg.RedisURL == "" {
		return NewMemory(cfg.Capacity), nil
	}

	client, err := redisdb.Connect(ctx, redisdb.Config{ConnectionURL: cfg.RedisURL})
	if err != nil {
		return nil, err
	}
	return NewRedis(client, cfg.Prefix), nil
}
