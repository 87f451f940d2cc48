package usecase

import (
	"context"

	"bloodlink/internal/domain/access"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
)

// CreateDonationRequestInput defines a new donation request. Empty requester
// fields default to the caller.
type CreateDonationRequestInput struct {
	RequesterName     string
	RequesterEmail    string
	RecipientName     string
	RecipientDistrict string
	RecipientUpazila  string
	RecipientDivision string
	HospitalName      string
	FullAddress       string
	BloodGroup        string
	DonationDate      string
	DonationTime      string
	RequestMessage    string
}

// DonateInput assigns a donor. Empty donor email defaults to the caller and
// empty status to inprogress.
type DonateInput struct {
	DonorID    string
	DonorName  string
	DonorEmail string
	Status     string
}

// DonationRequestUsecase defines the donation request operations.
type DonationRequestUsecase interface {
	Create(ctx context.Context, caller access.Caller, input CreateDonationRequestInput) (*repository.InsertResult, error)
	// List returns every request, optionally narrowed to one status.
	List(ctx context.Context, status string) ([]*entity.DonationRequest, error)
	ListByRequester(ctx context.Context, email string) ([]*entity.DonationRequest, error)
	ListByDonor(ctx context.Context, email string) ([]*entity.DonationRequest, error)
	Get(ctx context.Context, id string) (*entity.DonationRequest, error)
	// ShareCode renders a PNG QR code linking to the request.
	ShareCode(ctx context.Context, id string) ([]byte, error)
	// SetStatus changes only the status and updatedAt of a request.
	SetStatus(ctx context.Context, caller access.Caller, id, status string) (*repository.UpdateResult, error)
	Donate(ctx context.Context, caller access.Caller, id string, input DonateInput) (*repository.UpdateResult, error)
	Delete(ctx context.Context, caller access.Caller, id string) (*repository.DeleteResult, error)
}
