package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceText is Coalesce for strings where a blank value counts as absent.
func CoalesceText(ptr *string, fallback string) string {
	if ptr == nil || strings.TrimSpace(*ptr) == "" {
		return fallback
	}
	return *ptr
}

// CoalesceTextPtr is CoalesceText for nullable targets.
func CoalesceTextPtr(ptr *string, fallback *string) *string {
	if ptr == nil || strings.TrimSpace(*ptr) == "" {
		return fallback
	}
	v := *ptr
	return &v
}
