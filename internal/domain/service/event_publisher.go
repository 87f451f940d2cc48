package service

import (
	"context"
	"time"
)

// DomainEvent is a fact about the domain published for asynchronous consumers.
type DomainEvent struct {
	ID         string         `json:"id"`
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       string         `json:"type"`
	Subject    string         `json:"subject"`
	Actor      string         `json:"actor,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends event to the configured topic
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
