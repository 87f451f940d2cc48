// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bloodlink/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bloodlink"

// Payment outcomes recorded by ObservePayment.
const (
	OutcomeSucceeded   = "succeeded"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
	OutcomeUnavailable = "unavailable"
)

// Metrics owns a private registry and the collectors registered on it.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	payments        *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
	breakerState    *prometheus.GaugeVec
}

// New builds the registry. When metrics are disabled it returns nil.
func New(cfg *config.Config) *Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}

	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry registers every collector on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "operations_total",
			Help:      "Payment processor operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Domain events by type and result.",
		}, []string{"type", "result"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "breaker",
			Name:      "state",
			Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open).",
		}, []string{"name"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.payments,
		m.eventsPublished,
		m.breakerState,
	)

	return m
}

// ObserveHTTP records one served request. route is the router pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObservePayment records the outcome of a processor operation.
func (m *Metrics) ObservePayment(operation, outcome string) {
	if m == nil {
		return
	}

	m.payments.WithLabelValues(operation, outcome).Inc()
}

// ObserveEvent records a publish attempt.
func (m *Metrics) ObserveEvent(eventType string, err error) {
	if m == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(eventType, result).Inc()
}

// SetBreakerState records the numeric state of a named circuit breaker.
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}

	m.breakerState.WithLabelValues(name).Set(float64(state))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
