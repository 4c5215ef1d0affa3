package components

import (
	"context"
	"log/slog"

	"beer-service/internal/pkg/clock"
	"beer-service/internal/pkg/config"
	"beer-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
	usecaseSeedModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewBeerService,
		usecase.NewCustomerService,
	),
)

var usecaseSeedModule = fx.Module("usecase/seed",
	fx.Provide(
		usecase.NewSeeder,
	),
	fx.Invoke(registerSeed),
)

func registerSeed(lc fx.Lifecycle, cfg config.Config, seeder *usecase.Seeder, logger *slog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := seeder.Seed(ctx); err != nil {
				logger.Error("failed to seed bootstrap data", "error", err)
				return err
			}
			return nil
		},
	})
}
