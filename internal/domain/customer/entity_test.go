//go:build unit

package customer_test

import (
	"strings"
	"testing"
	"time"

	"beer-service/internal/domain/customer"
	"beer-service/internal/pkg/errs"
	"beer-service/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		build   func() *customer.Customer
		wantErr bool
	}{
		{name: "named customer", build: builder.NewCustomerBuilder().BuildDomain},
		{name: "nil name is allowed", build: builder.NewCustomerBuilder().WithoutName().BuildDomain},
		{name: "empty name is allowed", build: builder.NewCustomerBuilder().WithName("").BuildDomain},
		{name: "maximum length name", build: builder.NewCustomerBuilder().WithName(strings.Repeat("x", customer.MaxNameLength)).BuildDomain},
		{name: "name one over maximum", build: builder.NewCustomerBuilder().WithName(strings.Repeat("x", customer.MaxNameLength+1)).BuildDomain, wantErr: true},
		{
			name: "last modified before created",
			build: func() *customer.Customer {
				c := builder.NewCustomerBuilder().BuildDomain()
				c.LastModifiedDate = c.CreatedDate.Add(-time.Microsecond)
				return c
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := customer.Validate(tc.build())
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClone(t *testing.T) {
	orig := builder.NewCustomerBuilder().BuildStored()
	c := orig.Clone()
	*c.Name = "Thomas"

	require.NotNil(t, orig.Name)
	assert.Equal(t, "Barry", *orig.Name)
}
