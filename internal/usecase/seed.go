package usecase

import (
	"context"
	"log/slog"

	"beer-service/internal/domain/beer"
	"beer-service/internal/domain/customer"
	"beer-service/internal/pkg/clock"
	"beer-service/internal/pkg/errs"
	"beer-service/internal/pkg/ptr"
	"beer-service/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Seeder loads the starter catalogue into an empty store. Beers and customers
// are checked separately, so a store holding only one of them gets the other.
type Seeder struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSeeder(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Seeder {
	return &Seeder{uow: uow, clock: clk, logger: logger}
}

func (s *Seeder) Seed(ctx context.Context) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := s.seedBeers(ctx, tx.Beers()); err != nil {
			return errs.Wrap(err, "seed beers")
		}
		if err := s.seedCustomers(ctx, tx.Customers()); err != nil {
			return errs.Wrap(err, "seed customers")
		}
		return nil
	})
}

func (s *Seeder) seedBeers(ctx context.Context, repo shared.BeerRepository) error {
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	now := s.clock.Now()
	for _, b := range starterBeers() {
		b.CreatedDate = now
		b.UpdateDate = now
		if _, err := repo.Save(ctx, b); err != nil {
			return err
		}
	}
	s.logger.InfoContext(ctx, "seeded beers", "count", len(starterBeers()))
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context, repo shared.CustomerRepository) error {
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	now := s.clock.Now()
	names := starterCustomerNames()
	for _, name := range names {
		c := &customer.Customer{
			Name:             ptr.To(name),
			CreatedDate:      now,
			LastModifiedDate: now,
		}
		if _, err := repo.Save(ctx, c); err != nil {
			return err
		}
	}
	s.logger.InfoContext(ctx, "seeded customers", "count", len(names))
	return nil
}

func starterBeers() []*beer.Beer {
	return []*beer.Beer{
		{
			BeerName:       "Galaxy Cat",
			BeerStyle:      beer.StylePaleAle,
			UPC:            "12356",
			Price:          decimal.RequireFromString("12.99"),
			QuantityOnHand: 122,
		},
		{
			BeerName:       "Crank",
			BeerStyle:      beer.StylePaleAle,
			UPC:            "12356222",
			Price:          decimal.RequireFromString("11.99"),
			QuantityOnHand: 392,
		},
		{
			BeerName:       "Sunshine City",
			BeerStyle:      beer.StyleIPA,
			UPC:            "12356",
			Price:          decimal.RequireFromString("13.99"),
			QuantityOnHand: 144,
		},
	}
}

func starterCustomerNames() []string {
	return []string{"Barry", "Thomas", "Shakira"}
}
