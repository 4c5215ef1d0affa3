package repository

import (
	"context"

	"beer-service/internal/domain/beer"
	"beer-service/internal/infra"
	"beer-service/internal/infra/db"
	"beer-service/internal/infra/repository/converter"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

const beerTable = "beer"

type BeerRepository struct {
	db db.DBTX
}

func NewBeerRepository(dbtx db.DBTX) *BeerRepository {
	return &BeerRepository{db: dbtx}
}

func (r *BeerRepository) FindAll(ctx context.Context) ([]*beer.Beer, error) {
	query, args, err := psql.Select(converter.BeerColumns...).
		From(beerTable).
		OrderBy("created_date", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build beer list query", err)
	}

	var rows []converter.BeerRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to list beers", err)
	}
	return converter.BeersFromRows(rows)
}

func (r *BeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error) {
	query, args, err := psql.Select(converter.BeerColumns...).
		From(beerTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build beer query", err)
	}

	var row converter.BeerRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, infra.WrapRepoErr("beer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find beer by id", err)
	}
	return converter.BeerFromRow(row)
}

func (r *BeerRepository) Save(ctx context.Context, b *beer.Beer) (*beer.Beer, error) {
	row, err := converter.BeerToRow(b)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert beer", err)
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.Version = initialVersion

	query, args, err := psql.Insert(beerTable).
		Columns(converter.BeerColumns...).
		Values(row.ID, row.Version, row.BeerName, row.BeerStyle, row.UPC,
			row.QuantityOnHand, row.Price, row.CreatedDate, row.UpdateDate).
		Suffix(returning(converter.BeerColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build beer insert", err)
	}

	var saved converter.BeerRow
	if err := pgxscan.Get(ctx, r.db, &saved, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to create beer", err)
	}
	return converter.BeerFromRow(saved)
}

// Update is a compare-and-swap on version; see casMiss for how a miss is classified.
func (r *BeerRepository) Update(ctx context.Context, b *beer.Beer) (*beer.Beer, error) {
	row, err := converter.BeerToRow(b)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert beer", err)
	}

	query, args, err := psql.Update(beerTable).
		SetMap(converter.BeerMutableValues(row)).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": row.ID}).
		Where(squirrel.Eq{"version": row.Version}).
		Suffix(returning(converter.BeerColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build beer update", err)
	}

	var saved converter.BeerRow
	if err := pgxscan.Get(ctx, r.db, &saved, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, casMiss(ctx, r.db, beerTable, row.ID, "beer")
		}
		return nil, infra.WrapRepoErr("failed to update beer", err)
	}
	return converter.BeerFromRow(saved)
}

func (r *BeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, beerTable, id)
}

func (r *BeerRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, beerTable)
}
