package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusExporter exports metrics in Prometheus format.
type PrometheusExporter struct {
	collector *Collector

	cacheHits    prometheus.Gauge
	cacheMisses  prometheus.Gauge
	cacheHitRate prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpErrors   *prometheus.CounterVec
}

// NewPrometheusExporter creates a new Prometheus exporter.
func NewPrometheusExporter(collector *Collector) *PrometheusExporter {
	return &PrometheusExporter{
		collector: collector,
		cacheHits: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "landtree_render_cache_hits_total",
			Help: "Total number of render cache hits",
		}),
		cacheMisses: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "landtree_render_cache_misses_total",
			Help: "Total number of render cache misses",
		}),
		cacheHitRate: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "landtree_render_cache_hit_rate",
			Help: "Current render cache hit rate (0.0 to 1.0)",
		}),
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "landtree_http_requests_total",
			Help: "Total number of HTTP requests by route",
		}, []string{"route"}),
		httpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "landtree_http_request_duration_seconds",
			Help:    "HTTP request duration by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		httpErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "landtree_http_errors_total",
			Help: "Total number of failed HTTP requests by route",
		}, []string{"route"}),
	}
}

// RecordRequest records an HTTP request.
func (e *PrometheusExporter) RecordRequest(route string) {
	e.httpRequests.WithLabelValues(route).Inc()
}

// RecordDuration records the duration of an HTTP request in seconds.
func (e *PrometheusExporter) RecordDuration(route string, seconds float64) {
	e.httpDuration.WithLabelValues(route).Observe(seconds)
}

// RecordError records a failed HTTP request.
func (e *PrometheusExporter) RecordError(route string) {
	e.httpErrors.WithLabelValues(route).Inc()
}

// UpdateCacheMetrics refreshes the cache gauges from the collector.
// Called on scrape-adjacent intervals by the metrics server loop.
func (e *PrometheusExporter) UpdateCacheMetrics() {
	stats := e.collector.CacheStats()
	e.cacheHits.Set(float64(stats.Hits))
	e.cacheMisses.Set(float64(stats.Misses))
	e.cacheHitRate.Set(stats.HitRate())
}
