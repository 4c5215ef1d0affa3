package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

import "context"

type UnitOfWork interface {
	// Within: Full transaction for read-then-write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Beers() BeerRepository
	Customers() CustomerRepository
}
