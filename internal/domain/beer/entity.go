package beer

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"beer-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beer is the persisted shape. ID and Version are assigned by the store on Save;
// Version is bumped by the store on every successful Update.
type Beer struct {
	ID             uuid.UUID
	Version        int32
	BeerName       string
	BeerStyle      Style
	UPC            string
	QuantityOnHand int32
	Price          decimal.Decimal
	CreatedDate    time.Time
	UpdateDate     time.Time
}

// Validate reports every violated field constraint at once.
func Validate(b *Beer) error {
	v := &errs.ValidationError{}

	switch {
	case strings.TrimSpace(b.BeerName) == "":
		v.Add("beerName", "must not be blank")
	case utf8.RuneCountInString(b.BeerName) > MaxNameLength:
		v.Add("beerName", "size must be at most "+strconv.Itoa(MaxNameLength))
	}

	if !b.BeerStyle.IsValid() {
		v.Add("beerStyle", "must be one of the known beer styles")
	}

	switch {
	case strings.TrimSpace(b.UPC) == "":
		v.Add("upc", "must not be blank")
	case utf8.RuneCountInString(b.UPC) > MaxUPCLength:
		v.Add("upc", "size must be at most "+strconv.Itoa(MaxUPCLength))
	}

	if b.QuantityOnHand < 0 {
		v.Add("quantityOnHand", "must be greater than or equal to 0")
	}
	if b.Price.IsNegative() {
		v.Add("price", "must be greater than or equal to 0")
	}

	if !b.CreatedDate.IsZero() && b.UpdateDate.Before(b.CreatedDate) {
		v.Add("updateDate", "must not be before createdDate")
	}

	return v.OrNil()
}

// Clone returns an independent copy; decimal.Decimal is immutable so a value copy is enough.
func (b *Beer) Clone() *Beer {
	c := *b
	return &c
}
