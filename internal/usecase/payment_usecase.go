package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
)

// CheckoutOutput holds the secret the client confirms the card payment with.
type CheckoutOutput struct {
	ClientSecret string
	// Amount is the charged amount in minor units.
	Amount int64
}

// RecordPaymentInput identifies a confirmed payment. Amount, currency and method
// are taken from the processor, never from the client.
type RecordPaymentInput struct {
	TransactionID string
	Name          string
	Email         string
	Message       string
}

// PaymentUsecase defines the funding flow.
type PaymentUsecase interface {
	CreateCheckout(ctx context.Context, price float64) (*CheckoutOutput, error)
	// RecordPayment persists a payment after the processor confirms it succeeded.
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*repository.InsertResult, error)
	History(ctx context.Context) ([]*entity.Payment, error)
}
