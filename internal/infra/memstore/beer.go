package memstore

import (
	"context"

	"beer-service/internal/domain/beer"
	"beer-service/internal/infra"

	"github.com/google/uuid"
)

type BeerRepository struct {
	rows *table[*beer.Beer]
}

func NewBeerRepository() *BeerRepository {
	return &BeerRepository{rows: newTable[*beer.Beer]()}
}

func cloneBeer(b *beer.Beer) *beer.Beer { return b.Clone() }

func beerVersion(b *beer.Beer) int32 { return b.Version }

func (r *BeerRepository) FindAll(ctx context.Context) ([]*beer.Beer, error) {
	return r.rows.all(cloneBeer), nil
}

func (r *BeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error) {
	b, ok := r.rows.get(id, cloneBeer)
	if !ok {
		return nil, infra.WrapRepoErr("beer not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r *BeerRepository) Save(ctx context.Context, b *beer.Beer) (*beer.Beer, error) {
	stored := b.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.Version = initialVersion

	if err := r.rows.insert(stored.ID, stored); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

func (r *BeerRepository) Update(ctx context.Context, b *beer.Beer) (*beer.Beer, error) {
	next := b.Clone()
	next.Version = b.Version + 1

	// created_date is immutable once stored
	if cur, ok := r.rows.get(b.ID, cloneBeer); ok {
		next.CreatedDate = cur.CreatedDate
	}

	if err := r.rows.swap(b.ID, b.Version, beerVersion, next, "beer"); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

func (r *BeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.remove(id), nil
}

func (r *BeerRepository) Count(ctx context.Context) (int64, error) {
	return r.rows.count(), nil
}
