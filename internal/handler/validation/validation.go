// Package validation wires go-playground/validator into gin binding and turns
// binding failures into errs.ValidationError.
package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"beer-service/internal/domain/beer"
	"beer-service/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

const (
	bodyField  = "body"
	priceField = "price"

	// prefix of shopspring/decimal's UnmarshalJSON errors
	decimalDecodePrefix = "error decoding string '"
)

var setupOnce sync.Once

// Setup registers custom tags on gin's validator engine. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("beerstyle", validBeerStyle)
	})
}

// decimalValue lets numeric tags such as gte compare decimal.Decimal fields.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validBeerStyle(fl validator.FieldLevel) bool {
	return beer.Style(fl.Field().String()).IsValid()
}

// Translate converts an error returned by gin's ShouldBind* into a ValidationError.
func Translate(err error) *errs.ValidationError {
	out := &errs.ValidationError{}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &verrs):
		for _, e := range verrs {
			out.Add(e.Field(), message(e))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = bodyField
		}
		out.Add(field, "must be a "+typeErr.Type.String())
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		out.Add(bodyField, "malformed JSON")
	case strings.HasPrefix(err.Error(), decimalDecodePrefix):
		// price is the only decimal field on the wire
		out.Add(priceField, "must be a number")
	default:
		out.Add(bodyField, "invalid request body")
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "max":
		return "size must be at most " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "beerstyle":
		return "must be one of the known beer styles"
	default:
		return "invalid value"
	}
}
