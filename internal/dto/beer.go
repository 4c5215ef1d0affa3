package dto

import (
	"time"

	"beer-service/internal/domain/beer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// prices travel as JSON numbers, e.g. 12.99 rather than "12.99"
	decimal.MarshalJSONWithoutQuotes = true
}

// BeerDTO is the transfer shape used at the HTTP boundary. ID, Version and the dates
// are assigned by the store and ignored on input.
type BeerDTO struct {
	ID             *uuid.UUID       `json:"id,omitempty"`
	Version        *int32           `json:"version,omitempty"`
	BeerName       string           `json:"beerName" binding:"required,notblank,max=50"`
	BeerStyle      beer.Style       `json:"beerStyle" binding:"required,beerstyle"`
	UPC            string           `json:"upc" binding:"required,notblank,max=255"`
	QuantityOnHand int32            `json:"quantityOnHand" binding:"gte=0"`
	Price          *decimal.Decimal `json:"price" binding:"required,gte=0"`
	CreatedDate    *time.Time       `json:"createdDate,omitempty"`
	UpdateDate     *time.Time       `json:"updateDate,omitempty"`
}

// BeerPatch carries only the fields a client wants to change. Nil and blank values are left untouched.
// Version, when present, pins the version the client last read.
type BeerPatch struct {
	Version        *int32           `json:"version,omitempty"`
	BeerName       *string          `json:"beerName,omitempty" binding:"omitempty,max=50"`
	BeerStyle      *beer.Style      `json:"beerStyle,omitempty" binding:"omitempty,beerstyle"`
	UPC            *string          `json:"upc,omitempty" binding:"omitempty,max=255"`
	QuantityOnHand *int32           `json:"quantityOnHand,omitempty" binding:"omitempty,gte=0"`
	Price          *decimal.Decimal `json:"price,omitempty" binding:"omitempty,gte=0"`
}
