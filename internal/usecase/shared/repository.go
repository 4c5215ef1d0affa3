package shared

//go:generate mockgen -source=repository.go -destination=../../../tests/mock/shared/mock_repository.go -package=sharedmock

import (
	"context"

	"beer-service/internal/domain/beer"
	"beer-service/internal/domain/customer"

	"github.com/google/uuid"
)

// Stores generate IDs and enforce versions in their write path:
//   - Save assigns a new ID when the entity has none and stores it with Version 1.
//   - Update writes only if the stored version equals the entity's Version and bumps it by one.
//     A missing row is errs.ErrNotFound, a moved version is errs.ErrConflict.
//   - DeleteByID reports whether a row existed.

type BeerRepository interface {
	FindAll(ctx context.Context) ([]*beer.Beer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error)
	Save(ctx context.Context, b *beer.Beer) (*beer.Beer, error)
	Update(ctx context.Context, b *beer.Beer) (*beer.Beer, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*customer.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Save(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
