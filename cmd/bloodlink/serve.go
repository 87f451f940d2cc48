package main

import (
	"context"
	"log/slog"
	"os"

	"bloodlink/internal/delivery"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(
				injectService(),
				injectUsecase(),
				injectMiddleware(),
				injectHandler(),
				injectDelivery(),
				fx.Invoke(startServer),
			)
			if err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		params.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()

				return nil
			},
		})
	}
}
