//go:build unit || e2e

package builder

import (
	"time"

	"beer-service/internal/domain/customer"
	"beer-service/internal/dto"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID               uuid.UUID
	Version          int32
	Name             *string
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	name := "Barry"
	return &CustomerBuilder{
		Name:             &name,
		CreatedDate:      now,
		LastModifiedDate: now,
	}
}

func (b *CustomerBuilder) BuildDomain() *customer.Customer {
	c := &customer.Customer{
		ID:               b.ID,
		Version:          b.Version,
		CreatedDate:      b.CreatedDate,
		LastModifiedDate: b.LastModifiedDate,
	}
	if b.Name != nil {
		name := *b.Name
		c.Name = &name
	}
	return c
}

func (b *CustomerBuilder) BuildStored() *customer.Customer {
	out := b.BuildDomain()
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.Version == 0 {
		out.Version = 1
	}
	return out
}

func (b *CustomerBuilder) BuildRequestDTO() dto.CustomerDTO {
	d := dto.CustomerDTO{}
	if b.Name != nil {
		name := *b.Name
		d.Name = &name
	}
	return d
}

func (b *CustomerBuilder) WithID(id uuid.UUID) *CustomerBuilder {
	b.ID = id
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = &name
	return b
}

func (b *CustomerBuilder) WithoutName() *CustomerBuilder {
	b.Name = nil
	return b
}

func (b *CustomerBuilder) WithVersion(v int32) *CustomerBuilder {
	b.Version = v
	return b
}
