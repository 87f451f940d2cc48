package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"bloodlink/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Events of one subject keep their order.
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Publish sends the event and waits for the server acknowledgement
func (p *googlePubSubPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.Subject,
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.Subject)

		return errors.WithStack(err)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_type", event.Type),
		slog.String("subject", event.Subject),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
