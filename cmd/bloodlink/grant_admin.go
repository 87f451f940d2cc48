package main

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/usecase"
	"bloodlink/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func grantAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <email>",
		Short: "Promote a registered identity to admin",
		Long:  "Promote a registered identity to admin. Only admins can promote others over the API, so the first one is created here.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			app, err := newApp(
				fx.Provide(impl.NewUserService),
				fx.Invoke(func(lc fx.Lifecycle, users usecase.UserUsecase, logger *slog.Logger) {
					lc.Append(fx.Hook{
						OnStart: func(ctx context.Context) error {
							if _, err := users.GrantAdmin(ctx, email); err != nil {
								return err
							}
							logger.Info("Granted role",
								slog.String("email", email),
								slog.String("role", entity.RoleAdmin.String()),
							)

							return nil
						},
					})
				}),
			)
			if err != nil {
				return err
			}

			return runOnce(cmd.Context(), app)
		},
	}
}
