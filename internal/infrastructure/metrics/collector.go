package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/asakaida/landtree/pkg/cache"
)

// Collector aggregates request metrics per route, independent of the
// Prometheus export path, so they can be inspected in-process.
type Collector struct {
	requests sync.Map // map[string]*uint64 - route -> request count
	errors   sync.Map // map[string]*uint64 - route -> error count
	duration sync.Map // map[string]*durationValue - route -> total seconds

	// Render cache reference (optional, for cache statistics).
	cache cache.Cache
}

// durationValue holds a duration total guarded by a mutex.
type durationValue struct {
	mu           sync.Mutex
	totalSeconds float64
}

// RouteMetrics holds per-route request metrics.
type RouteMetrics struct {
	RequestCounts        map[string]uint64
	ErrorCounts          map[string]uint64
	TotalDurationSeconds map[string]float64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// SetCache sets the render cache whose statistics the collector reports.
func (c *Collector) SetCache(cache cache.Cache) {
	c.cache = cache
}

// RecordRequest records a request for a route.
func (c *Collector) RecordRequest(route string) {
	atomic.AddUint64(c.counter(&c.requests, route), 1)
}

// RecordError records a failed request for a route.
func (c *Collector) RecordError(route string) {
	atomic.AddUint64(c.counter(&c.errors, route), 1)
}

// RecordDuration adds a request duration (in seconds) for a route.
func (c *Collector) RecordDuration(route string, seconds float64) {
	val, _ := c.duration.LoadOrStore(route, &durationValue{})
	dv := val.(*durationValue)

	dv.mu.Lock()
	dv.totalSeconds += seconds
	dv.mu.Unlock()
}

// CacheStats returns current render cache statistics, or zeroes when no
// cache is attached.
func (c *Collector) CacheStats() *cache.Stats {
	if c.cache == nil {
		return &cache.Stats{}
	}
	return c.cache.Stats()
}

// RouteMetrics returns a snapshot of the per-route metrics.
func (c *Collector) RouteMetrics() *RouteMetrics {
	result := &RouteMetrics{
		RequestCounts:        make(map[string]uint64),
		ErrorCounts:          make(map[string]uint64),
		TotalDurationSeconds: make(map[string]float64),
	}

	c.requests.Range(func(key, value interface{}) bool {
		result.RequestCounts[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})
	c.errors.Range(func(key, value interface{}) bool {
		result.ErrorCounts[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})
	c.duration.Range(func(key, value interface{}) bool {
		dv := value.(*durationValue)
		dv.mu.Lock()
		result.TotalDurationSeconds[key.(string)] = dv.totalSeconds
		dv.mu.Unlock()
		return true
	})

	return result
}

// counter gets or creates the counter for a key.
func (c *Collector) counter(m *sync.Map, key string) *uint64 {
	val, _ := m.LoadOrStore(key, new(uint64))
	return val.(*uint64)
}
