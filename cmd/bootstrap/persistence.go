package bootstrap

import (
	"log/slog"

	"beer-service/internal/infra/memstore"
	"beer-service/internal/infra/repository"
	"beer-service/internal/infra/uow"
	"beer-service/internal/pkg/config"
	"beer-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

type Stores struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Beers      shared.BeerRepository
	Customers  shared.CustomerRepository
}

// NewStores selects the backing store by STORE_DRIVER. The pool is only opened for postgres.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Info("using in-memory store")
		store := memstore.New()
		return Stores{
			UnitOfWork: memstore.NewUnitOfWork(store),
			Beers:      store.Beers(),
			Customers:  store.Customers(),
		}, nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return Stores{}, err
	}
	logger.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return Stores{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Beers:      repository.NewBeerRepository(pool),
		Customers:  repository.NewCustomerRepository(pool),
	}, nil
}
