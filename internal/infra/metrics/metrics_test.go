package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloodlink/config"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Disabled(t *testing.T) {
	m := New(&config.Config{})
	assert.Nil(t, m)

	// nil receivers are no-ops
	m.ObserveHTTP(http.MethodGet, "/users", http.StatusOK, time.Millisecond)
	m.ObservePayment("create_intent", OutcomeSucceeded)
	m.ObserveEvent("user.registered", nil)
	m.SetBreakerState("payment", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveHTTP(http.MethodGet, "/users", http.StatusForbidden, 5*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/users", http.StatusForbidden, 5*time.Millisecond)
	m.ObservePayment("create_intent", OutcomeSucceeded)
	m.ObserveEvent("payment.recorded", errors.New("broker down"))
	m.SetBreakerState("payment", 2)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/users", "403")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.payments.WithLabelValues("create_intent", OutcomeSucceeded)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.eventsPublished.WithLabelValues("payment.recorded", "error")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.breakerState.WithLabelValues("payment")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	var histogram *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "bloodlink_http_request_duration_seconds" {
			histogram = f
		}
	}
	require.NotNil(t, histogram)
	assert.Equal(t, uint64(2), histogram.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestMetrics_Handler(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())
	m.ObservePayment("get_intent", OutcomeFailed)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bloodlink_payment_operations_total{operation="get_intent",outcome="failed"} 1`)
}
