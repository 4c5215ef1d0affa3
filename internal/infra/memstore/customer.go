package memstore

import (
	"context"

	"beer-service/internal/domain/customer"
	"beer-service/internal/infra"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	rows *table[*customer.Customer]
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{rows: newTable[*customer.Customer]()}
}

func cloneCustomer(c *customer.Customer) *customer.Customer { return c.Clone() }

func customerVersion(c *customer.Customer) int32 { return c.Version }

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	return r.rows.all(cloneCustomer), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := r.rows.get(id, cloneCustomer)
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	stored := c.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.Version = initialVersion

	if err := r.rows.insert(stored.ID, stored); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	next := c.Clone()
	next.Version = c.Version + 1

	if cur, ok := r.rows.get(c.ID, cloneCustomer); ok {
		next.CreatedDate = cur.CreatedDate
	}

	if err := r.rows.swap(c.ID, c.Version, customerVersion, next, "customer"); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rows.remove(id), nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	return r.rows.count(), nil
}
