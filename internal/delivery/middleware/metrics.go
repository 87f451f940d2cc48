package middleware

import (
	"time"

	"bloodlink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route pattern
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware. A nil recorder disables it.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler returns
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.ObserveHTTP(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
