package repository

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateTransaction is returned when a payment with the same transaction id exists.
var ErrDuplicateTransaction = errors.New("payment transaction already recorded")

// PaymentRepository defines the interface for payment storage.
type PaymentRepository interface {
	// Create inserts a payment record. It returns ErrDuplicateTransaction on a repeated transaction id.
	Create(ctx context.Context, payment *entity.Payment) (*InsertResult, error)

	// FindAll returns every payment, newest first.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// TotalAmount sums the recorded amounts.
	TotalAmount(ctx context.Context) (float64, error)
}
