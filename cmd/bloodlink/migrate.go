package main

import (
	"context"

	"bloodlink/internal/infra/persistence"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables or indexes of the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(fx.Invoke(func(lc fx.Lifecycle, params persistence.MigrateParams) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return persistence.Migrate(ctx, params)
					},
				})
			}))
			if err != nil {
				return err
			}

			return runOnce(cmd.Context(), app)
		},
	}
}

// runOnce starts app, which does its work in OnStart hooks, and stops it again.
func runOnce(ctx context.Context, app *fx.App) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := app.Start(ctx); err != nil {
		return err
	}

	return app.Stop(ctx)
}
