package converter

import (
	"time"

	"beer-service/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerRow struct {
	ID               uuid.UUID `db:"id"`
	Version          int32     `db:"version"`
	Name             *string   `db:"name"`
	CreatedDate      time.Time `db:"created_date"`
	LastModifiedDate time.Time `db:"last_modified_date"`
}

var CustomerColumns = []string{
	"id", "version", "name", "created_date", "last_modified_date",
}

func CustomerToRow(c *customer.Customer) (CustomerRow, error) {
	var row CustomerRow
	if err := copier.Copy(&row, c); err != nil {
		return CustomerRow{}, err
	}
	row.Name = cloneString(c.Name)
	return row, nil
}

func CustomerFromRow(row CustomerRow) (*customer.Customer, error) {
	c := &customer.Customer{}
	if err := copier.Copy(c, &row); err != nil {
		return nil, err
	}
	c.Name = cloneString(row.Name)
	c.CreatedDate = c.CreatedDate.UTC()
	c.LastModifiedDate = c.LastModifiedDate.UTC()
	return c, nil
}

func CustomersFromRows(rows []CustomerRow) ([]*customer.Customer, error) {
	out := make([]*customer.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := CustomerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func CustomerMutableValues(row CustomerRow) map[string]any {
	return map[string]any{
		"name":               row.Name,
		"last_modified_date": row.LastModifiedDate,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
