// Package mapper converts between persisted entities and the transfer shapes used at the HTTP boundary.
// Conversions are total and perform no validation.
package mapper

import (
	"time"

	"beer-service/internal/domain/beer"
	"beer-service/internal/dto"

	"github.com/google/uuid"
)

func BeerToDTO(b *beer.Beer) dto.BeerDTO {
	price := b.Price
	return dto.BeerDTO{
		ID:             idPtr(b.ID),
		Version:        versionPtr(b.Version),
		BeerName:       b.BeerName,
		BeerStyle:      b.BeerStyle,
		UPC:            b.UPC,
		QuantityOnHand: b.QuantityOnHand,
		Price:          &price,
		CreatedDate:    timePtr(b.CreatedDate),
		UpdateDate:     timePtr(b.UpdateDate),
	}
}

// BeerFromDTO maps absent fields to zero values. Two inputs the binding layer
// rejects do not survive a round trip: a nil Price comes back as 0 and a
// Version of 0 comes back as nil.
func BeerFromDTO(d dto.BeerDTO) *beer.Beer {
	b := &beer.Beer{
		BeerName:       d.BeerName,
		BeerStyle:      d.BeerStyle,
		UPC:            d.UPC,
		QuantityOnHand: d.QuantityOnHand,
	}
	if d.ID != nil {
		b.ID = *d.ID
	}
	if d.Version != nil {
		b.Version = *d.Version
	}
	if d.Price != nil {
		b.Price = *d.Price
	}
	if d.CreatedDate != nil {
		b.CreatedDate = *d.CreatedDate
	}
	if d.UpdateDate != nil {
		b.UpdateDate = *d.UpdateDate
	}
	return b
}

func BeerListToDTO(beers []*beer.Beer) []dto.BeerDTO {
	out := make([]dto.BeerDTO, 0, len(beers))
	for _, b := range beers {
		out = append(out, BeerToDTO(b))
	}
	return out
}

func idPtr(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func versionPtr(v int32) *int32 {
	if v == 0 {
		return nil
	}
	return &v
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
