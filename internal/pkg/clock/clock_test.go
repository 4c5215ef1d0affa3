//go:build unit

package clock_test

import (
	"testing"
	"time"

	"beer-service/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	now := clock.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, now, now.Truncate(clock.Precision))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 999, time.FixedZone("JST", 9*60*60))
	c := clock.NewMockClock(start)

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, 0, c.Now().Nanosecond())

	c.Add(1500 * time.Nanosecond)
	assert.Equal(t, 1000, c.Now().Nanosecond())
}
