package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware returns an echo middleware that records request metrics for
// each route. exporter may be nil when Prometheus export is disabled.
func Middleware(collector *Collector, exporter *PrometheusExporter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			route := c.Path()

			collector.RecordRequest(route)
			if exporter != nil {
				exporter.RecordRequest(route)
			}

			err := next(c)

			seconds := time.Since(start).Seconds()
			collector.RecordDuration(route, seconds)
			if exporter != nil {
				exporter.RecordDuration(route, seconds)
			}

			if err != nil {
				collector.RecordError(route)
				if exporter != nil {
					exporter.RecordError(route)
				}
			}

			return err
		}
	}
}
