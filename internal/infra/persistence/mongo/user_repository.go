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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(CollectionUsers)}
}

// Create inserts a new user keyed by lower-cased email.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, fromUserDomain(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	result := toInsertResult(res.InsertedID)
	user.ID = result.InsertedID

	return result, nil
}

// FindByEmail retrieves a user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := repo.coll.FindOne(ctx, bson.D{{Key: "email", Value: normalizeEmail(email)}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return doc.toDomain(), nil
}

// FindAll returns every user, newest first.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}

	return users, nil
}

// UpdateRoleByID sets the role of the user with the given id.
func (repo *userRepository) UpdateRoleByID(ctx context.Context, id string, role entity.Role, now time.Time) (*repository.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	return repo.set(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{
		{Key: "role", Value: string(role)},
		{Key: "updatedAt", Value: now},
	})
}

// UpdateRoleByEmail sets the role of the user with the given email.
func (repo *userRepository) UpdateRoleByEmail(ctx context.Context, email string, role entity.Role, now time.Time) (*repository.UpdateResult, error) {
	return repo.set(ctx, bson.D{{Key: "email", Value: normalizeEmail(email)}}, bson.D{
		{Key: "role", Value: string(role)},
		{Key: "updatedAt", Value: now},
	})
}

// UpdateStatusByEmail sets the account status of the user with the given email.
func (repo *userRepository) UpdateStatusByEmail(ctx context.Context, email string, status entity.UserStatus, now time.Time) (*repository.UpdateResult, error) {
	return repo.set(ctx, bson.D{{Key: "email", Value: normalizeEmail(email)}}, bson.D{
		{Key: "status", Value: string(status)},
		{Key: "updatedAt", Value: now},
	})
}

// UpdateProfile sets the non-nil profile fields of the user with the given email.
func (repo *userRepository) UpdateProfile(ctx context.Context, email string, update entity.ProfileUpdate, now time.Time) (*repository.UpdateResult, error) {
	fields := bson.D{}
	appendIfSet := func(key string, value *string) {
		if value != nil {
			fields = append(fields, bson.E{Key: key, Value: *value})
		}
	}
	appendIfSet("name", update.Name)
	appendIfSet("avatar", update.Avatar)
	appendIfSet("bloodGroup", update.BloodGroup)
	appendIfSet("district", update.District)
	appendIfSet("upazila", update.Upazila)
	fields = append(fields, bson.E{Key: "updatedAt", Value: now})

	return repo.set(ctx, bson.D{{Key: "email", Value: normalizeEmail(email)}}, fields)
}

// Count returns the number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return n, nil
}

func (repo *userRepository) set(ctx context.Context, filter, fields bson.D) (*repository.UpdateResult, error) {
	res, err := repo.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return toUpdateResult(res.MatchedCount, res.ModifiedCount), nil
}
