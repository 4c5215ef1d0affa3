package customer

import (
	"strconv"
	"time"
	"unicode/utf8"

	"beer-service/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 255

// Customer.Name is nullable; nil and "" are stored as distinct values.
type Customer struct {
	ID               uuid.UUID
	Version          int32
	Name             *string
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

func Validate(c *Customer) error {
	v := &errs.ValidationError{}
	if c.Name != nil && utf8.RuneCountInString(*c.Name) > MaxNameLength {
		v.Add("name", "size must be at most "+strconv.Itoa(MaxNameLength))
	}
	if !c.CreatedDate.IsZero() && c.LastModifiedDate.Before(c.CreatedDate) {
		v.Add("lastModifiedDate", "must not be before createdDate")
	}
	return v.OrNil()
}

func (c *Customer) Clone() *Customer {
	out := *c
	if c.Name != nil {
		name := *c.Name
		out.Name = &name
	}
	return &out
}
