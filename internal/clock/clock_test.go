package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/timecalc/internal/clock"
)

func TestManual(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	now := clock.Real{}.Now()
	assert.False(t, now.Before(before))
}
