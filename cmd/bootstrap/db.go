package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"beer-service/internal/infra/db"
	"beer-service/internal/infra/migration"
	"beer-service/internal/pkg/config"
	"beer-service/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 15 * time.Second

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := Migrate(cfg.DB, logger); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func Migrate(cfg config.DBConfig, logger *slog.Logger) error {
	m, err := migration.New(migrations.FS, cfg.BuildMigrateURL(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Warn("failed to close migrator", "error", cerr)
		}
	}()
	return m.Up()
}
