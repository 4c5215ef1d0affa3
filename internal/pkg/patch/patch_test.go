//go:build unit

package patch_test

import (
	"testing"

	"beer-service/internal/pkg/patch"
	"beer-service/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, int32(7), patch.Coalesce(nil, int32(7)))
	assert.Equal(t, int32(0), patch.Coalesce(ptr.To(int32(0)), int32(7)))
}

func TestCoalesceText(t *testing.T) {
	testCases := []struct {
		name string
		in   *string
		want string
	}{
		{name: "nil keeps fallback", in: nil, want: "old"},
		{name: "empty keeps fallback", in: ptr.To(""), want: "old"},
		{name: "whitespace keeps fallback", in: ptr.To(" \t"), want: "old"},
		{name: "value replaces fallback", in: ptr.To("new"), want: "new"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, patch.CoalesceText(tc.in, "old"))
		})
	}
}

func TestCoalesceTextPtr(t *testing.T) {
	old := ptr.To("old")

	assert.Same(t, old, patch.CoalesceTextPtr(nil, old))
	assert.Same(t, old, patch.CoalesceTextPtr(ptr.To("  "), old))
	assert.Nil(t, patch.CoalesceTextPtr(nil, nil))

	in := ptr.To("new")
	got := patch.CoalesceTextPtr(in, old)
	assert.Equal(t, "new", *got)
	assert.NotSame(t, in, got)
}
