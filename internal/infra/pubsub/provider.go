package pubsub

import (
	"context"
	"log/slog"

	"bloodlink/config"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", event.Type),
		slog.String("subject", event.Subject),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// instrumentedPublisher counts publish results per event type
type instrumentedPublisher struct {
	next    service.EventPublisher
	metrics *metrics.Metrics
}

func (p *instrumentedPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	err := p.next.Publish(ctx, event)
	p.metrics.ObserveEvent(event.Type, err)

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newProviderPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	instrumented := &instrumentedPublisher{next: publisher, metrics: params.Metrics}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return instrumented.Close()
		},
	})

	return instrumented, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderRabbitMQ:
		if cfg.AMQPURL == "" {
			return nil, errors.New("amqp url is required for rabbitmq provider")
		}
		if cfg.Queue == "" {
			return nil, errors.New("queue is required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher",
			slog.String("queue", cfg.Queue),
		)

		return NewRabbitMQPublisher(cfg.AMQPURL, cfg.Queue, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// eventAttributes are the message attributes used for filtering and tracing
func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": event.Type,
		"subject":    event.Subject,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
