package main

import (
	"context"
	"log/slog"

	"bloodlink/config"
	"bloodlink/internal/delivery/api"
	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/domain/access"
	"bloodlink/internal/infra/auth"
	"bloodlink/internal/infra/auth/firebase"
	logs "bloodlink/internal/infra/log"
	"bloodlink/internal/infra/metrics"
	"bloodlink/internal/infra/payment"
	"bloodlink/internal/infra/persistence"
	"bloodlink/internal/infra/pubsub"
	"bloodlink/internal/infra/qrcode"
	"bloodlink/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// newApp loads the configuration first because it decides which store module is wired.
func newApp(opts ...fx.Option) (*fx.App, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	storage, err := persistence.Module(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	return fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		injectInfra(),
		storage,
		fx.Options(opts...),
	), nil
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		metrics.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			firebase.NewIdentityVerifier,
			qrcode.NewQRCodeServiceFromConfig,
			pubsub.NewEventPublisher,
			payment.NewStripeGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewDonationRequestService,
			impl.NewBlogService,
			impl.NewPaymentService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			access.DefaultTable,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewDonationRequestHandler,
			handler.NewBlogHandler,
			handler.NewPaymentHandler,
			handler.NewStatsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
