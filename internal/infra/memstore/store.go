// Package memstore is a process-local store for running without PostgreSQL.
// It keeps the same contract as the SQL repositories: IDs and versions are
// assigned here and Update is a compare-and-swap on the version.
package memstore

import (
	"context"
	"sync"

	"beer-service/internal/infra"
	"beer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const initialVersion int32 = 1

// table is an insertion-ordered map guarded by a single lock.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]T
	order []uuid.UUID
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]T)}
}

func (t *table[T]) all(clone func(T) T) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, clone(t.rows[id]))
	}
	return out
}

func (t *table[T]) get(id uuid.UUID, clone func(T) T) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return clone(row), true
}

func (t *table[T]) insert(id uuid.UUID, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; ok {
		return infra.WrapRepoErr("duplicate id "+id.String(), nil, infra.KindDuplicateKey)
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return nil
}

// swap replaces the row only when version reports the expected value.
func (t *table[T]) swap(id uuid.UUID, expected int32, version func(T) int32, next T, entity string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.rows[id]
	if !ok {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	if version(cur) != expected {
		return infra.WrapRepoErr(entity+" was modified concurrently", nil, infra.KindConflict)
	}
	t.rows[id] = next
	return nil
}

func (t *table[T]) remove(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) count() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int64(len(t.rows))
}

type Store struct {
	beers     *BeerRepository
	customers *CustomerRepository
}

func New() *Store {
	return &Store{
		beers:     NewBeerRepository(),
		customers: NewCustomerRepository(),
	}
}

func (s *Store) Beers() shared.BeerRepository {
	return s.beers
}

func (s *Store) Customers() shared.CustomerRepository {
	return s.customers
}

// UnitOfWork runs fn against the shared store. There is no rollback: each
// repository call is atomic on its own and conflicts surface through Update.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, u.store)
}
