package repository

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDonationRequestNotFound is returned when no donation request matches the id.
var ErrDonationRequestNotFound = errors.New("donation request not found")

// DonationRequestFilter narrows list queries. Zero values match everything.
type DonationRequestFilter struct {
	RequesterEmail string
	DonorEmail     string
	Status         entity.DonationStatus
}

// DonationRequestRepository defines the interface for donation request storage.
type DonationRequestRepository interface {
	// Create inserts a new donation request.
	Create(ctx context.Context, req *entity.DonationRequest) (*InsertResult, error)

	// FindByID retrieves a donation request by id.
	FindByID(ctx context.Context, id string) (*entity.DonationRequest, error)

	// Find returns the donation requests matching filter, newest first.
	Find(ctx context.Context, filter DonationRequestFilter) ([]*entity.DonationRequest, error)

	// UpdateStatus sets only the status (and updatedAt) of a donation request.
	UpdateStatus(ctx context.Context, id string, status entity.DonationStatus, now time.Time) (*UpdateResult, error)

	// AssignDonor sets the donor fields and the status of a donation request.
	AssignDonor(ctx context.Context, id string, donor entity.DonorRef, status entity.DonationStatus, now time.Time) (*UpdateResult, error)

	// Delete removes a donation request by id.
	Delete(ctx context.Context, id string) (*DeleteResult, error)

	// Count returns the number of donation requests.
	Count(ctx context.Context) (int64, error)
}
