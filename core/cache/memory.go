package cache

import (
	"context"
	"time"
)

// memoryCache adapts the generic LRU to the Cache interface for processes
// without a Redis deployment.
type memoryCache struct {
	lru *LRUCache[string, []byte]
}

// NewMemory creates an in-memory cache bounded to capacity entries.
func NewMemory(capacity int) Cache {
	return &memoryCache{lru: NewLRUCache[string, []byte](capacity)}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	// Copy so later caller mutations cannot corrupt the cached value.
	buf := make([]byte, len(value))
	copy(buf, value)
	m.lru.PutTTL(key, buf, ttl)
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

func (m *memoryCache) Has(_ context.Context, key string) (bool, error) {
	return m.lru.Contains(key), nil
}

func (m *memoryCache) Clear(context.Context) error {
	m.lru.Clear()
	return nil
}

func (m *memoryCache) Close() error {
	m.lru.Clear()
	return nil
}
