package mongo

import (
	"context"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{coll: db.Collection(CollectionPayments)}
}

// Create inserts a payment record; the unique transactionId index rejects replays.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, fromPaymentDomain(payment))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateTransaction
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to record payment")
	}

	result := toInsertResult(res.InsertedID)
	payment.ID = result.InsertedID

	return result, nil
}

func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	var docs []paymentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode payments")
	}

	payments := make([]*entity.Payment, 0, len(docs))
	for i := range docs {
		payments = append(payments, docs[i].toDomain())
	}

	return payments, nil
}

// TotalAmount sums the amount of every payment with a $group stage.
func (repo *paymentRepository) TotalAmount(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, errors.Wrap(err, "failed to decode payment total")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Total, nil
}
