package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// loadDotEnv reads .env files into the process environment exactly once.
// A missing .env file is not an error; explicit environment variables
// always take precedence over file values.
func loadDotEnv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Load parses environment variables into cfg. Each configuration type is
// parsed only once per process; subsequent calls for the same type return
// the cached value. cfg must be a non-nil pointer to a struct.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	loadDotEnv()

	t := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	cached, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", t, err)
	}

	cacheMu.Lock()
	cache[t] = *cfg
	cacheMu.Unlock()

	return nil
}

// MustLoad is Load that panics on failure, for fail-fast startup paths.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset clears the configuration cache. Intended for tests that mutate the
// environment between loads.
func Reset() {
	cacheMu.Lock()
	cache = make(map[reflect.Type]any)
	cacheMu.Unlock()
}
