package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:         "evt-1",
		RequestID:  "req-1",
		Type:       "donation_request.created",
		Subject:    "665f1c2e9b1e8a3d4c5b6a7f",
		Actor:      "v@x.com",
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Data:       map[string]any{"bloodGroup": "O+"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewProviderPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "nil config", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: "rabbitmq", Queue: "q"}, wantErr: true},
		{name: "rabbitmq without queue", cfg: &config.PubSubConfig{Provider: "rabbitmq", AMQPURL: "amqp://x"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newProviderPublisher(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.noop {
				assert.IsType(t, &noopPublisher{}, p)
				assert.NoError(t, p.Publish(context.Background(), testEvent()))
			}
		})
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "donation_request.created", received.Message.Attributes["event_type"])
	assert.Equal(t, localSubscription, received.Subscription)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "665f1c2e9b1e8a3d4c5b6a7f", event.Subject)
	assert.Equal(t, "O+", event.Data["bloodGroup"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.Publish(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestBuildPublishing(t *testing.T) {
	msg, err := buildPublishing(testEvent())
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "evt-1", msg.MessageId)
	assert.Equal(t, "req-1", msg.CorrelationId)
	assert.Equal(t, "donation_request.created", msg.Type)
	assert.Equal(t, "665f1c2e9b1e8a3d4c5b6a7f", msg.Headers["subject"])
	assert.Contains(t, string(msg.Body), `"type":"donation_request.created"`)
}

type failingPublisher struct{ closed bool }

func (f *failingPublisher) Publish(context.Context, *service.DomainEvent) error {
	return errors.New("unreachable")
}

func (f *failingPublisher) Close() error {
	f.closed = true

	return nil
}

func TestInstrumentedPublisher(t *testing.T) {
	reg := prometheus.NewRegistry()
	inner := &failingPublisher{}
	p := &instrumentedPublisher{next: inner, metrics: metrics.NewWithRegistry(reg)}

	assert.Error(t, p.Publish(context.Background(), testEvent()))
	require.NoError(t, p.Close())
	assert.True(t, inner.closed)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if f.GetName() == "bloodlink_events_published_total" {
			found = true
			assert.InDelta(t, 1, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	assert.True(t, found)
}
