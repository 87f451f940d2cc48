package service

import (
	"context"

	"github.com/pkg/errors"
)

// Payment gateway errors.
var (
	// ErrGatewayUnavailable is returned when calls are short-circuited after repeated failures.
	ErrGatewayUnavailable = errors.New("payment processor unavailable")
	// ErrIntentNotFound is returned when the processor has no intent with the given id.
	ErrIntentNotFound = errors.New("payment intent not found")
)

// IntentStatusSucceeded is the processor status of a captured payment.
const IntentStatusSucceeded = "succeeded"

// PaymentIntent is the processor-side record of one payment attempt.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	// Amount is in minor currency units.
	Amount        int64
	Currency      string
	Status        string
	PaymentMethod string
}

// Succeeded reports whether the processor captured the payment.
func (p *PaymentIntent) Succeeded() bool {
	return p.Status == IntentStatusSucceeded
}

// PaymentGateway is the bridge to the external card processor.
type PaymentGateway interface {
	// CreateIntent creates a card payment intent for amount minor units of currency.
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)

	// GetIntent fetches an existing intent by id.
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
}
