package postgres

import (
	"context"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) (*repository.InsertResult, error) {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateTransaction
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to record payment")
	}

	payment.ID = paymentM.ID.String()

	return &repository.InsertResult{Acknowledged: true, InsertedID: payment.ID}, nil
}

func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func (repo *paymentRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	return total, nil
}
