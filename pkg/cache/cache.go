// Package cache defines the interface for caching rendered ownership trees.
package cache

import "context"

// Cache stores rendered tree text keyed by query. Entries expire after the
// implementation's configured TTL.
type Cache interface {
	// Get retrieves a rendered tree. The second return value reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a rendered tree.
	Set(ctx context.Context, key, value string) error

	// Delete removes an entry.
	Delete(ctx context.Context, key string) error

	// Purge removes all entries.
	Purge(ctx context.Context) error

	// Stats returns cache statistics.
	Stats() *Stats
}

// Stats holds cache performance statistics.
type Stats struct {
	Hits    uint64 // Lookups answered from cache
	Misses  uint64 // Lookups not answered from cache
	Added   uint64 // Entries stored
	Evicted uint64 // Entries dropped to respect the entry cap
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (s *Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total)
}
