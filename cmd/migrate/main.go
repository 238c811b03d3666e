package main

import (
	"context"
	"log/slog"

	"idstore/config"
	logs "idstore/internal/infra/log"
	"idstore/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(
			migrate,
		),
	).Run()
}

// migrate runs once the database is reachable, then stops the app.
func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Schema migrated")

			return params.Shutdown()
		},
	})
}
