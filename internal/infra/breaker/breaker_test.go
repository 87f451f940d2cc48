package breaker

import (
	"log/slog"
	"testing"
	"time"

	"bloodlink/config"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestSettings_Defaults(t *testing.T) {
	s := Settings("payment", config.CircuitBreakerConfig{})

	assert.Equal(t, "payment", s.Name)
	assert.Equal(t, uint32(defaultMaxRequests), s.MaxRequests)
	assert.Equal(t, defaultInterval, s.Interval)
	assert.Equal(t, defaultTimeout, s.Timeout)
	assert.False(t, s.ReadyToTrip(gobreaker.Counts{ConsecutiveFailures: 2}))
	assert.True(t, s.ReadyToTrip(gobreaker.Counts{ConsecutiveFailures: 3}))
}

func TestNew_TripsAfterConsecutiveFailures(t *testing.T) {
	errBoom := errors.New("boom")
	errIgnored := errors.New("client error")

	cb := New("payment", config.CircuitBreakerConfig{
		ConsecutiveFailures: 2,
		Timeout:             time.Minute,
	}, slog.New(slog.DiscardHandler), nil, func(err error) bool {
		return err == nil || errors.Is(err, errIgnored)
	})

	fail := func() (any, error) { return nil, errBoom }
	ignored := func() (any, error) { return nil, errIgnored }

	_, err := cb.Execute(ignored)
	assert.ErrorIs(t, err, errIgnored)
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, _ = cb.Execute(fail)
	_, _ = cb.Execute(fail)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err = cb.Execute(fail)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
