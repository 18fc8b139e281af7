package rolecache

import (
	"sync"
	"time"
)

// Short-lived cache for per-user role lookups so the auth middleware is
// not a database read on every request. The clock is injected so expiry
// is testable without waiting on wall time.

type Clock func() time.Time

type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Clear()
}

// ===============================
// In-memory implementation
// ===============================

type entry struct {
	value     string
	expiresAt time.Time
}

type MemoryCache struct {
	mu      sync.Mutex
	now     Clock
	entries map[string]entry
}

func NewMemory(now Clock) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		now:     now,
		entries: make(map[string]entry),
	}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false
	}
	return e.value, true
}

func (c *MemoryCache) Set(key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

var _ Cache = (*MemoryCache)(nil)
