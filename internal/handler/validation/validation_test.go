//go:build unit

package validation_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"beer-service/internal/dto"
	"beer-service/internal/handler/validation"
	"beer-service/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBeer() dto.BeerDTO {
	price := decimal.RequireFromString("12.99")
	return dto.BeerDTO{
		BeerName:       "Galaxy Cat",
		BeerStyle:      "PALE_ALE",
		UPC:            "12356",
		QuantityOnHand: 122,
		Price:          &price,
	}
}

func messages(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	out := map[string]string{}
	for _, v := range validation.Translate(err).Violations {
		out[v.Field] = v.Message
	}
	return out
}

func TestTranslate_ValidatorMessages(t *testing.T) {
	validation.Setup()
	validation.Setup()

	negative := decimal.RequireFromString("-1")
	testCases := []struct {
		name   string
		mutate func(*dto.BeerDTO)
		field  string
		want   string
	}{
		{name: "blank name", mutate: func(d *dto.BeerDTO) { d.BeerName = "  " }, field: "beerName", want: "must not be blank"},
		{name: "long name", mutate: func(d *dto.BeerDTO) { d.BeerName = strings.Repeat("x", 51) }, field: "beerName", want: "size must be at most 50"},
		{name: "missing style", mutate: func(d *dto.BeerDTO) { d.BeerStyle = "" }, field: "beerStyle", want: "must not be null"},
		{name: "unknown style", mutate: func(d *dto.BeerDTO) { d.BeerStyle = "SOUR" }, field: "beerStyle", want: "must be one of the known beer styles"},
		{name: "negative quantity", mutate: func(d *dto.BeerDTO) { d.QuantityOnHand = -1 }, field: "quantityOnHand", want: "must be greater than or equal to 0"},
		{name: "null price", mutate: func(d *dto.BeerDTO) { d.Price = nil }, field: "price", want: "must not be null"},
		{name: "negative price", mutate: func(d *dto.BeerDTO) { d.Price = &negative }, field: "price", want: "must be greater than or equal to 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBeer()
			tc.mutate(&in)

			got := messages(t, binding.Validator.ValidateStruct(&in))

			assert.Equal(t, tc.want, got[tc.field], "violations: %v", got)
		})
	}

	t.Run("valid beer passes", func(t *testing.T) {
		in := validBeer()
		assert.NoError(t, binding.Validator.ValidateStruct(&in))
	})
}

func TestTranslate_DecodeErrors(t *testing.T) {
	var d dto.BeerDTO

	typeErr := json.Unmarshal([]byte(`{"quantityOnHand":"lots"}`), &d)
	assert.Equal(t, map[string]string{"quantityOnHand": "must be a int32"}, messages(t, typeErr))

	syntaxErr := json.Unmarshal([]byte(`{"beerName":`), &d)
	assert.Equal(t, map[string]string{"body": "malformed JSON"}, messages(t, syntaxErr))

	for _, raw := range []string{`{"price":"abc"}`, `{"price":true}`, `{"price":"1.2.3"}`} {
		decimalErr := json.Unmarshal([]byte(raw), &d)
		assert.Equal(t, map[string]string{"price": "must be a number"}, messages(t, decimalErr), raw)
	}

	other := validation.Translate(errors.New("boom"))
	assert.True(t, errs.Is(other, errs.ErrValidation))
	assert.Equal(t, "body", other.Violations[0].Field)
	assert.Equal(t, "invalid request body", other.Violations[0].Message)
}
