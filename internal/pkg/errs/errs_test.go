//go:build unit

package errs_test

import (
	"testing"

	"beer-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	marked := errs.Mark(errs.New("row moved"), errs.ErrConflict)
	wrapped := errs.Wrap(marked, "update beer")

	assert.True(t, errs.Is(wrapped, errs.ErrConflict))
	assert.False(t, errs.Is(wrapped, errs.ErrNotFound))
	assert.True(t, errs.Is(errs.Wrapf(errs.ErrNotFound, "beer %d", 1), errs.ErrNotFound))
}

func TestValidationError(t *testing.T) {
	v := &errs.ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("beerName", "must not be blank")
	v.Add("price", "must be greater than or equal to 0")
	err := errs.Wrap(v.OrNil(), "create beer")

	assert.True(t, errs.Is(err, errs.ErrValidation))

	var got *errs.ValidationError
	require.True(t, errs.As(err, &got))
	assert.Len(t, got.Violations, 2)
	assert.Contains(t, err.Error(), "beerName: must not be blank")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	err := errs.Wrap(errs.New("connection reset"), "list beers")
	lines := errs.ExtractStackLines(err, 5)
	require.Len(t, lines, 5)
	assert.Equal(t, "list beers: connection reset", lines[0])

	all := errs.ExtractStackLines(err, 0)
	assert.Greater(t, len(all), 5)
}
