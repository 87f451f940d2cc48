// Package persistence selects the storage backend named by database.driver and
// provides the repositories built on it.
package persistence

import (
	"context"
	"log/slog"

	"bloodlink/config"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/lifecycle"
	"bloodlink/internal/errors"
	mongostore "bloodlink/internal/infra/persistence/mongo"
	"bloodlink/internal/infra/persistence/postgres"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module returns the fx option providing the four repositories for driver.
func Module(driver string) (fx.Option, error) {
	switch driver {
	case constants.DatabaseDriverMongo, "":
		return fx.Options(
			fx.Provide(
				mongostore.New,
				mongostore.NewUserRepository,
				mongostore.NewDonationRequestRepository,
				mongostore.NewBlogRepository,
				mongostore.NewPaymentRepository,
			),
			fx.Invoke(registerMongoIndexes),
		), nil

	case constants.DatabaseDriverPostgres:
		return fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewDonationRequestRepository,
			postgres.NewBlogRepository,
			postgres.NewPaymentRepository,
		), nil

	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
}

// MigrateParams are the dependencies of Migrate. Only the handle of the configured driver is set.
type MigrateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mongo  *mongo.Database `optional:"true"`
	Gorm   *gorm.DB        `optional:"true"`
}

// Migrate prepares the schema of the configured backend: indexes on Mongo, tables on Postgres.
func Migrate(ctx context.Context, params MigrateParams) error {
	switch {
	case params.Mongo != nil:
		if err := mongostore.EnsureIndexes(ctx, params.Mongo); err != nil {
			return err
		}
	case params.Gorm != nil:
		if err := postgres.Migrate(ctx, params.Gorm); err != nil {
			return err
		}
	default:
		return errors.Errorf("no store configured for driver %q", params.Config.Database.Driver)
	}

	params.Logger.Info("Schema is up to date", slog.String("driver", params.Config.Database.Driver))

	return nil
}

func registerMongoIndexes(lc fx.Lifecycle, db *mongo.Database, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := mongostore.EnsureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure MongoDB indexes")
			}
			logger.Debug("MongoDB indexes ensured")

			return nil
		},
	})
}
