package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/timecalc/internal/domain"
)

func TestCalculator_EnterAndAccumulate(t *testing.T) {
	var c domain.Calculator

	c.PressDigits("1")
	require.NoError(t, c.ApplyUnit(domain.UnitDays))
	c.PressDigits("3")
	c.PressDigits("0")
	require.NoError(t, c.ApplyUnit(domain.UnitHours))

	assert.Equal(t, domain.NewDuration(2, 6, 0), c.Current)
	assert.Empty(t, c.Input)

	c.Plus()
	assert.Equal(t, domain.Zero, c.Current)
	assert.Equal(t, domain.NewDuration(2, 6, 0), c.Accumulator)

	c.PressDigits("90")
	require.NoError(t, c.ApplyUnit(domain.UnitMinutes))
	c.Equals()
	assert.Equal(t, domain.NewDuration(2, 7, 30), c.Accumulator)
}

func TestCalculator_IgnoresNonNumericInput(t *testing.T) {
	var c domain.Calculator

	c.PressDigits("4a-2 ")
	assert.Equal(t, "42", c.Input)

	var empty domain.Calculator
	require.NoError(t, empty.ApplyUnit(domain.UnitHours))
	assert.Equal(t, domain.Zero, empty.Current)

	overflow := domain.Calculator{Input: "99999999999999999999"}
	require.NoError(t, overflow.ApplyUnit(domain.UnitMinutes))
	assert.Equal(t, domain.Zero, overflow.Current)
	assert.Equal(t, "99999999999999999999", overflow.Input)
}

func TestCalculator_InvalidUnit(t *testing.T) {
	c := domain.Calculator{Input: "5"}
	assert.ErrorIs(t, c.ApplyUnit(domain.Unit("w")), domain.ErrInvalidUnit)
	assert.Equal(t, "5", c.Input)
}

func TestCalculator_PlusKeepsPendingInput(t *testing.T) {
	c := domain.Calculator{Input: "7", Current: domain.Hours(1)}
	c.Plus()
	assert.Equal(t, "7", c.Input)
	assert.Equal(t, domain.Hours(1), c.Accumulator)
}

func TestCalculator_Clear(t *testing.T) {
	c := domain.Calculator{
		Input:       "12",
		Current:     domain.Hours(3),
		Accumulator: domain.Days(1),
	}
	c.Clear()
	assert.Empty(t, c.Input)
	assert.Equal(t, domain.Zero, c.Current)
	assert.Equal(t, domain.Zero, c.Accumulator)
}

func TestParseUnit(t *testing.T) {
	u, err := domain.ParseUnit("H")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitHours, u)

	_, err = domain.ParseUnit("s")
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}
