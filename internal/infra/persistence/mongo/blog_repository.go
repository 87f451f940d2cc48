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

type blogRepository struct {
	coll *mongo.Collection
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *mongo.Database) repository.BlogRepository {
	return &blogRepository{coll: db.Collection(CollectionBlogs)}
}

func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) (*repository.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, fromBlogDomain(blog))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	result := toInsertResult(res.InsertedID)
	blog.ID = result.InsertedID

	return result, nil
}

func (repo *blogRepository) FindByID(ctx context.Context, id string) (*entity.Blog, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc blogDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by ID")
	}

	return doc.toDomain(), nil
}

func (repo *blogRepository) FindAll(ctx context.Context, status entity.BlogStatus) ([]*entity.Blog, error) {
	query := bson.D{}
	if status != "" {
		query = append(query, bson.E{Key: "status", Value: string(status)})
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	var docs []blogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode blogs")
	}

	blogs := make([]*entity.Blog, 0, len(docs))
	for i := range docs {
		blogs = append(blogs, docs[i].toDomain())
	}

	return blogs, nil
}

func (repo *blogRepository) UpdateStatus(ctx context.Context, id string, status entity.BlogStatus, now time.Time) (*repository.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: string(status)},
		{Key: "updatedAt", Value: now},
	}}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update blog status")
	}

	return toUpdateResult(res.MatchedCount, res.ModifiedCount), nil
}

func (repo *blogRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete blog")
	}

	return toDeleteResult(res.DeletedCount), nil
}
