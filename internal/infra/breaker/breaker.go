// Package breaker builds circuit breakers for calls to external systems.
package breaker

import (
	"context"
	"log/slog"
	"time"

	"bloodlink/config"
	"bloodlink/internal/infra/metrics"

	"github.com/sony/gobreaker"
)

const (
	defaultMaxRequests         = 3
	defaultInterval            = 10 * time.Second
	defaultTimeout             = 30 * time.Second
	defaultConsecutiveFailures = 3
)

// Settings converts the config section into gobreaker settings, filling defaults.
func Settings(name string, cfg config.CircuitBreakerConfig) gobreaker.Settings {
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = defaultMaxRequests
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = defaultConsecutiveFailures
	}

	return gobreaker.Settings{
		Name:        name,
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	}
}

// New creates a breaker that logs and records every state change.
// isSuccessful, when non-nil, decides which errors count as failures.
func New(
	name string,
	cfg config.CircuitBreakerConfig,
	logger *slog.Logger,
	m *metrics.Metrics,
	isSuccessful func(err error) bool,
) *gobreaker.CircuitBreaker {
	settings := Settings(name, cfg)
	settings.IsSuccessful = isSuccessful
	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		level := slog.LevelWarn
		if to == gobreaker.StateOpen {
			level = slog.LevelError
		}
		logger.Log(context.Background(), level, "Circuit breaker state changed",
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		m.SetBreakerState(name, int(to))
	}

	return gobreaker.NewCircuitBreaker(settings)
}
