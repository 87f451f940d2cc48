package mongo

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// donationRequestRepository implements the repository.DonationRequestRepository interface.
type donationRequestRepository struct {
	coll *mongo.Collection
}

// NewDonationRequestRepository is the constructor for donationRequestRepository.
func NewDonationRequestRepository(db *mongo.Database) repository.DonationRequestRepository {
	return &donationRequestRepository{coll: db.Collection(CollectionDonationRequests)}
}

// Create inserts a new donation request.
func (repo *donationRequestRepository) Create(ctx context.Context, req *entity.DonationRequest) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, fromDonationRequestDomain(req))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create donation request")
	}

	result := toInsertResult(res.InsertedID)
	req.ID = result.InsertedID

	return result, nil
}

// FindByID retrieves a donation request by id.
func (repo *donationRequestRepository) FindByID(ctx context.Context, id string) (*entity.DonationRequest, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc donationRequestDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDonationRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation request by ID")
	}

	return doc.toDomain(), nil
}

// Find returns the donation requests matching filter, newest first.
func (repo *donationRequestRepository) Find(ctx context.Context, filter repository.DonationRequestFilter) ([]*entity.DonationRequest, error) {
	query := bson.D{}
	if filter.RequesterEmail != "" {
		query = append(query, bson.E{Key: "requesterEmail", Value: normalizeEmail(filter.RequesterEmail)})
	}
	if filter.DonorEmail != "" {
		query = append(query, bson.E{Key: "donorEmail", Value: normalizeEmail(filter.DonorEmail)})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: string(filter.Status)})
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donation requests")
	}

	var docs []donationRequestDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode donation requests")
	}

	requests := make([]*entity.DonationRequest, 0, len(docs))
	for i := range docs {
		requests = append(requests, docs[i].toDomain())
	}

	return requests, nil
}

// UpdateStatus sets only the status and updatedAt of a donation request.
func (repo *donationRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.DonationStatus, now time.Time) (*repository.UpdateResult, error) {
	return repo.set(ctx, id, bson.D{
		{Key: "status", Value: string(status)},
		{Key: "updatedAt", Value: now},
	})
}

// AssignDonor sets the donor fields and the status of a donation request.
func (repo *donationRequestRepository) AssignDonor(ctx context.Context, id string, donor entity.DonorRef, status entity.DonationStatus, now time.Time) (*repository.UpdateResult, error) {
	return repo.set(ctx, id, bson.D{
		{Key: "donorId", Value: donor.ID},
		{Key: "donorName", Value: donor.Name},
		{Key: "donorEmail", Value: normalizeEmail(donor.Email)},
		{Key: "status", Value: string(status)},
		{Key: "updatedAt", Value: now},
	})
}

// Delete removes a donation request by id.
func (repo *donationRequestRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete donation request")
	}

	return toDeleteResult(res.DeletedCount), nil
}

// Count returns the number of donation requests.
func (repo *donationRequestRepository) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count donation requests")
	}

	return n, nil
}

func (repo *donationRequestRepository) set(ctx context.Context, id string, fields bson.D) (*repository.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update donation request")
	}

	return toUpdateResult(res.MatchedCount, res.ModifiedCount), nil
}
