package postgres

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRequestRepository implements the repository.DonationRequestRepository interface.
type donationRequestRepository struct {
	db *gorm.DB
}

// NewDonationRequestRepository is the constructor for donationRequestRepository.
func NewDonationRequestRepository(db *gorm.DB) repository.DonationRequestRepository {
	return &donationRequestRepository{db: db}
}

func (repo *donationRequestRepository) Create(ctx context.Context, req *entity.DonationRequest) (*repository.InsertResult, error) {
	reqM := fromDonationRequestDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create donation request")
	}

	req.ID = reqM.ID.String()

	return &repository.InsertResult{Acknowledged: true, InsertedID: req.ID}, nil
}

func (repo *donationRequestRepository) FindByID(ctx context.Context, id string) (*entity.DonationRequest, error) {
	reqID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var reqM model.DonationRequestModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", reqID).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation request by ID")
	}

	return toDonationRequestDomain(&reqM), nil
}

func (repo *donationRequestRepository) Find(ctx context.Context, filter repository.DonationRequestFilter) ([]*entity.DonationRequest, error) {
	query := repo.db.WithContext(ctx)
	if filter.RequesterEmail != "" {
		query = query.Where("requester_email = ?", normalizeEmail(filter.RequesterEmail))
	}
	if filter.DonorEmail != "" {
		query = query.Where("donor_email = ?", normalizeEmail(filter.DonorEmail))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var reqModels []*model.DonationRequestModel
	if err := query.Order("created_at DESC").Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donation requests")
	}

	requests := make([]*entity.DonationRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		requests = append(requests, toDonationRequestDomain(reqM))
	}

	return requests, nil
}

func (repo *donationRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.DonationStatus, now time.Time) (*repository.UpdateResult, error) {
	return repo.updates(ctx, id, map[string]any{
		"status":     string(status),
		"updated_at": now,
	})
}

func (repo *donationRequestRepository) AssignDonor(ctx context.Context, id string, donor entity.DonorRef, status entity.DonationStatus, now time.Time) (*repository.UpdateResult, error) {
	return repo.updates(ctx, id, map[string]any{
		"donor_id":    donor.ID,
		"donor_name":  donor.Name,
		"donor_email": normalizeEmail(donor.Email),
		"status":      string(status),
		"updated_at":  now,
	})
}

func (repo *donationRequestRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	reqID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", reqID).
		Delete(&model.DonationRequestModel{})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete donation request")
	}

	return deleteResult(result.RowsAffected), nil
}

func (repo *donationRequestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&model.DonationRequestModel{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donation requests")
	}

	return n, nil
}

func (repo *donationRequestRepository) updates(ctx context.Context, id string, columns map[string]any) (*repository.UpdateResult, error) {
	reqID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DonationRequestModel{}).
		Where("id = ?", reqID).
		Updates(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update donation request")
	}

	return updateResult(result.RowsAffected), nil
}
