//go:build unit || e2e

package builder

import (
	"time"

	"beer-service/internal/domain/beer"
	"beer-service/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BeerBuilder struct {
	ID             uuid.UUID
	Version        int32
	BeerName       string
	BeerStyle      beer.Style
	UPC            string
	QuantityOnHand int32
	Price          decimal.Decimal
	CreatedDate    time.Time
	UpdateDate     time.Time
}

// NewBeerBuilder starts from the "Galaxy Cat" pale ale.
func NewBeerBuilder() *BeerBuilder {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &BeerBuilder{
		BeerName:       "Galaxy Cat",
		BeerStyle:      beer.StylePaleAle,
		UPC:            "12356",
		QuantityOnHand: 122,
		Price:          decimal.RequireFromString("12.99"),
		CreatedDate:    now,
		UpdateDate:     now,
	}
}

func (b *BeerBuilder) With(mutate func(*BeerBuilder)) *BeerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BeerBuilder) BuildDomain() *beer.Beer {
	return &beer.Beer{
		ID:             b.ID,
		Version:        b.Version,
		BeerName:       b.BeerName,
		BeerStyle:      b.BeerStyle,
		UPC:            b.UPC,
		QuantityOnHand: b.QuantityOnHand,
		Price:          b.Price,
		CreatedDate:    b.CreatedDate,
		UpdateDate:     b.UpdateDate,
	}
}

// BuildStored is BuildDomain with an id and version as a store would assign them.
func (b *BeerBuilder) BuildStored() *beer.Beer {
	out := b.BuildDomain()
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.Version == 0 {
		out.Version = 1
	}
	return out
}

// BuildRequestDTO is the client input: no id, version or dates.
func (b *BeerBuilder) BuildRequestDTO() dto.BeerDTO {
	price := b.Price
	return dto.BeerDTO{
		BeerName:       b.BeerName,
		BeerStyle:      b.BeerStyle,
		UPC:            b.UPC,
		QuantityOnHand: b.QuantityOnHand,
		Price:          &price,
	}
}

// Fluent builder methods
func (b *BeerBuilder) WithID(id uuid.UUID) *BeerBuilder {
	b.ID = id
	return b
}

func (b *BeerBuilder) WithVersion(v int32) *BeerBuilder {
	b.Version = v
	return b
}

func (b *BeerBuilder) WithName(name string) *BeerBuilder {
	b.BeerName = name
	return b
}

func (b *BeerBuilder) WithStyle(style beer.Style) *BeerBuilder {
	b.BeerStyle = style
	return b
}

func (b *BeerBuilder) WithUPC(upc string) *BeerBuilder {
	b.UPC = upc
	return b
}

func (b *BeerBuilder) WithQuantity(q int32) *BeerBuilder {
	b.QuantityOnHand = q
	return b
}

func (b *BeerBuilder) WithPrice(price string) *BeerBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *BeerBuilder) WithDates(created, updated time.Time) *BeerBuilder {
	b.CreatedDate = created
	b.UpdateDate = updated
	return b
}

func (b *BeerBuilder) AsCrank() *BeerBuilder {
	b.BeerName = "Crank"
	b.BeerStyle = beer.StylePaleAle
	b.UPC = "12356222"
	b.QuantityOnHand = 392
	b.Price = decimal.RequireFromString("11.99")
	return b
}

func (b *BeerBuilder) AsSunshineCity() *BeerBuilder {
	b.BeerName = "Sunshine City"
	b.BeerStyle = beer.StyleIPA
	b.UPC = "12356"
	b.QuantityOnHand = 144
	b.Price = decimal.RequireFromString("13.99")
	return b
}
