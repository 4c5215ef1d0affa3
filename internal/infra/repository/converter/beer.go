package converter

import (
	"time"

	"beer-service/internal/domain/beer"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// BeerRow mirrors the beer table; field names match the domain entity so copier can map them.
type BeerRow struct {
	ID             uuid.UUID       `db:"id"`
	Version        int32           `db:"version"`
	BeerName       string          `db:"beer_name"`
	BeerStyle      string          `db:"beer_style"`
	UPC            string          `db:"upc"`
	QuantityOnHand int32           `db:"quantity_on_hand"`
	Price          decimal.Decimal `db:"price"`
	CreatedDate    time.Time       `db:"created_date"`
	UpdateDate     time.Time       `db:"update_date"`
}

var BeerColumns = []string{
	"id", "version", "beer_name", "beer_style", "upc",
	"quantity_on_hand", "price", "created_date", "update_date",
}

func BeerToRow(b *beer.Beer) (BeerRow, error) {
	var row BeerRow
	if err := copier.Copy(&row, b); err != nil {
		return BeerRow{}, err
	}
	return row, nil
}

func BeerFromRow(row BeerRow) (*beer.Beer, error) {
	b := &beer.Beer{}
	if err := copier.Copy(b, &row); err != nil {
		return nil, err
	}
	b.CreatedDate = b.CreatedDate.UTC()
	b.UpdateDate = b.UpdateDate.UTC()
	return b, nil
}

func BeersFromRows(rows []BeerRow) ([]*beer.Beer, error) {
	out := make([]*beer.Beer, 0, len(rows))
	for _, row := range rows {
		b, err := BeerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// BeerMutableValues lists the columns an update may overwrite.
func BeerMutableValues(row BeerRow) map[string]any {
	return map[string]any{
		"beer_name":        row.BeerName,
		"beer_style":       row.BeerStyle,
		"upc":              row.UPC,
		"quantity_on_hand": row.QuantityOnHand,
		"price":            row.Price,
		"update_date":      row.UpdateDate,
	}
}
