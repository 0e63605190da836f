package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a process-local cache backed by a map. Entries expire
// lazily on read. Intended for tests and single-run batch workloads; it
// never evicts under memory pressure.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, counting expired ones not yet
// collected.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
