package repository

import (
	"context"

	"beer-service/internal/domain/customer"
	"beer-service/internal/infra"
	"beer-service/internal/infra/db"
	"beer-service/internal/infra/repository/converter"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

const customerTable = "customer"

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	query, args, err := psql.Select(converter.CustomerColumns...).
		From(customerTable).
		OrderBy("created_date", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer list query", err)
	}

	var rows []converter.CustomerRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	return converter.CustomersFromRows(rows)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query, args, err := psql.Select(converter.CustomerColumns...).
		From(customerTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer query", err)
	}

	var row converter.CustomerRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by id", err)
	}
	return converter.CustomerFromRow(row)
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	row, err := converter.CustomerToRow(c)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert customer", err)
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.Version = initialVersion

	query, args, err := psql.Insert(customerTable).
		Columns(converter.CustomerColumns...).
		Values(row.ID, row.Version, row.Name, row.CreatedDate, row.LastModifiedDate).
		Suffix(returning(converter.CustomerColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer insert", err)
	}

	var saved converter.CustomerRow
	if err := pgxscan.Get(ctx, r.db, &saved, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return converter.CustomerFromRow(saved)
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	row, err := converter.CustomerToRow(c)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert customer", err)
	}

	query, args, err := psql.Update(customerTable).
		SetMap(converter.CustomerMutableValues(row)).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": row.ID}).
		Where(squirrel.Eq{"version": row.Version}).
		Suffix(returning(converter.CustomerColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer update", err)
	}

	var saved converter.CustomerRow
	if err := pgxscan.Get(ctx, r.db, &saved, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, casMiss(ctx, r.db, customerTable, row.ID, "customer")
		}
		return nil, infra.WrapRepoErr("failed to update customer", err)
	}
	return converter.CustomerFromRow(saved)
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, customerTable, id)
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, customerTable)
}
