package mongo

import (
	"context"

	"bloodlink/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexPlan lists the indexes each collection needs.
func indexPlan() map[string][]mongo.IndexModel {
	byNewest := bson.D{{Key: "createdAt", Value: -1}}

	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			{Keys: byNewest},
		},
		CollectionDonationRequests: {
			{Keys: bson.D{{Key: "requesterEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "donorEmail", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: byNewest},
		},
		CollectionBlogs: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: byNewest},
		},
		CollectionPayments: {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_transaction")},
			{Keys: byNewest},
		},
	}
}

// EnsureIndexes creates every index in the plan. Existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range indexPlan() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
