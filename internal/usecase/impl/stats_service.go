package impl

import (
	"context"

	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	userRepo    repository.UserRepository
	requestRepo repository.DonationRequestRepository
	paymentRepo repository.PaymentRepository
}

// NewStatsService is the constructor for statsService.
func NewStatsService(
	userRepo repository.UserRepository,
	requestRepo repository.DonationRequestRepository,
	paymentRepo repository.PaymentRepository,
) usecase.StatsUsecase {
	return &statsService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		paymentRepo: paymentRepo,
	}
}

// Stats runs the three aggregate queries concurrently.
func (srv *statsService) Stats(ctx context.Context) (*usecase.Stats, error) {
	var stats usecase.Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := srv.userRepo.Count(gctx)
		stats.TotalUsers = n

		return errors.Wrap(err, "failed to count users")
	})
	g.Go(func() error {
		n, err := srv.requestRepo.Count(gctx)
		stats.TotalRequests = n

		return errors.Wrap(err, "failed to count donation requests")
	})
	g.Go(func() error {
		total, err := srv.paymentRepo.TotalAmount(gctx)
		stats.TotalFunding = total

		return errors.Wrap(err, "failed to sum payments")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
