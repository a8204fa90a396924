// Package memorycache implements cache.Cache as an in-process LRU with TTL.
package memorycache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/asakaida/landtree/pkg/cache"
)

// entry is one cached render with its expiry.
type entry struct {
	key       string
	value     string
	expiresAt time.Time
}

// Config holds configuration for the memory cache.
type Config struct {
	// MaxEntries caps the number of cached items. When exceeded, the
	// least recently used entry is evicted. Zero or negative means 1.
	MaxEntries int

	// TTL is the time-to-live applied to every entry.
	TTL time.Duration

	// EnableStats enables collection of hit/miss statistics.
	EnableStats bool
}

// Cache is an entry-count-capped LRU cache with per-entry TTL.
type Cache struct {
	mu sync.Mutex

	items      map[string]*list.Element
	recency    *list.List // front = most recently used
	maxEntries int
	ttl        time.Duration

	stats *cache.Stats // nil when stats are disabled
}

// New creates a memory cache from config.
func New(cfg *Config) *Cache {
	max := cfg.MaxEntries
	if max < 1 {
		max = 1
	}
	c := &Cache{
		items:      make(map[string]*list.Element),
		recency:    list.New(),
		maxEntries: max,
		ttl:        cfg.TTL,
	}
	if cfg.EnableStats {
		c.stats = &cache.Stats{}
	}
	return c
}

// Get retrieves a value, treating expired entries as absent.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.miss()
		return "", false
	}

	ent := elem.Value.(*entry)
	if time.Now().After(ent.expiresAt) {
		c.remove(elem)
		c.miss()
		return "", false
	}

	c.recency.MoveToFront(elem)
	if c.stats != nil {
		c.stats.Hits++
	}
	return ent.value, true
}

// Set stores a value with the configured TTL, evicting the least recently
// used entry when the cap is reached.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = value
		ent.expiresAt = expiresAt
		c.recency.MoveToFront(elem)
		return nil
	}

	elem := c.recency.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = elem
	if c.stats != nil {
		c.stats.Added++
	}

	for len(c.items) > c.maxEntries {
		oldest := c.recency.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest)
		if c.stats != nil {
			c.stats.Evicted++
		}
	}
	return nil
}

// Delete removes an entry if present.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.remove(elem)
	}
	return nil
}

// Purge removes all entries.
func (c *Cache) Purge(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.recency.Init()
	return nil
}

// Stats returns a copy of the cache statistics.
func (c *Cache) Stats() *cache.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stats == nil {
		return &cache.Stats{}
	}
	snapshot := *c.stats
	return &snapshot
}

// Len returns the current number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// remove drops an element; callers hold the lock.
func (c *Cache) remove(elem *list.Element) {
	c.recency.Remove(elem)
	delete(c.items, elem.Value.(*entry).key)
}

// miss records a miss; callers hold the lock.
func (c *Cache) miss() {
	if c.stats != nil {
		c.stats.Misses++
	}
}
