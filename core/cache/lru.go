package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRUCache is a thread-safe, capacity-bounded cache with least-recently-used
// eviction and optional per-entry TTL. Get, Put and Remove are O(1).
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(key K, value V)

	// now is swappable in tests.
	now func() time.Time
}

type lruEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// NewLRUCache creates a cache holding at most capacity items. A
// non-positive capacity defaults to 1024.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		capacity = 1024
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// SetEvictCallback registers a cleanup hook invoked for every evicted or
// removed entry, outside of expiry checks on Get.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value for key and marks it most recently used. Expired
// entries are removed and reported as absent.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}

	ent := el.Value.(*lruEntry[K, V])
	if c.expired(ent) {
		c.removeElement(el)
		return zero, false
	}

	c.order.MoveToFront(el)
	return ent.value, true
}

// Put stores value under key with no expiry.
func (c *LRUCache[K, V]) Put(key K, value V) {
	c.PutTTL(key, value, 0)
}

// PutTTL stores value under key, expiring after ttl. A non-positive ttl
// means no expiry. Inserting into a full cache evicts the least recently
// used entry.
func (c *LRUCache[K, V]) PutTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*lruEntry[K, V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&lruEntry[K, V]{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = el

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Remove deletes key and returns its value, if present.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}
	ent := el.Value.(*lruEntry[K, V])
	c.removeElement(el)
	return ent.value, true
}

// Contains reports presence without updating recency.
func (c *LRUCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	if c.expired(el.Value.(*lruEntry[K, V])) {
		c.removeElement(el)
		return false
	}
	return true
}

// Len returns the number of stored entries, including not-yet-collected
// expired ones.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes every entry, invoking the eviction callback for each.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.order.Front(); el != nil; el = el.Next() {
		ent := el.Value.(*lruEntry[K, V])
		delete(c.items, ent.key)
		if c.onEvict != nil {
			c.onEvict(ent.key, ent.value)
		}
	}
	c.order.Init()
}

func (c *LRUCache[K, V]) expired(ent *lruEntry[K, V]) bool {
	return !ent.expiresAt.IsZero() && c.now().After(ent.expiresAt)
}

// removeElement must be called with the lock held.
func (c *LRUCache[K, V]) removeElement(el *list.Element) {
	ent := el.Value.(*lruEntry[K, V])
	c.order.Remove(el)
	delete(c.items, ent.key)
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}
