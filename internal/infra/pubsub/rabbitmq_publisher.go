package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/infra/breaker"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue
type rabbitMQPublisher struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	queueName string
	cb        *gobreaker.CircuitBreaker
	logger    *slog.Logger

	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker and declares the queue
func NewRabbitMQPublisher(amqpURL, queueName string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queueName)
	}

	return &rabbitMQPublisher{
		conn:      conn,
		ch:        ch,
		queueName: queueName,
		cb:        breaker.New("rabbitmq-publisher", config.CircuitBreakerConfig{}, logger, nil, nil),
		logger:    logger,
	}, nil
}

// Publish sends the event as a persistent message through the circuit breaker
func (p *rabbitMQPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	msg, err := buildPublishing(event)
	if err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= 0 {
		return ctx.Err()
	}

	_, err = p.cb.Execute(func() (any, error) {
		p.mu.Lock()
		defer p.mu.Unlock()

		return nil, p.ch.PublishWithContext(
			ctx,
			"",          // exchange (default)
			p.queueName, // routing key == queue name
			false,       // mandatory
			false,       // immediate
			msg,
		)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func buildPublishing(event *service.DomainEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.ID,
		CorrelationId: event.RequestID,
		Type:          event.Type,
		Timestamp:     event.OccurredAt,
		Headers:       headers,
		Body:          body,
	}, nil
}

// Close closes the channel then the connection
func (p *rabbitMQPublisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			return errors.WithStack(err)
		}
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
