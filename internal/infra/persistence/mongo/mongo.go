// Package mongo contains the document-store implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/lifecycle"
	"bloodlink/internal/errors"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names.
const (
	CollectionUsers            = "users"
	CollectionDonationRequests = "donationRequests"
	CollectionBlogs            = "blogs"
	CollectionPayments         = "payments"
)

const slowCommandThreshold = 200 * time.Millisecond

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the document store and returns the configured database handle.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(params.Config.Env.ServiceName).
		SetTimeout(cfg.Timeout).
		SetMonitor(newCommandMonitor(params.Logger, slowCommandThreshold))

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return client.Database(cfg.Database), nil
}

// newCommandMonitor logs failed commands and commands slower than threshold.
func newCommandMonitor(logger *slog.Logger, threshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration < threshold {
				return
			}
			logger.WarnContext(ctx, "Slow MongoDB command",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
			)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.ErrorContext(ctx, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.String("failure", evt.Failure),
			)
		},
	}
}
