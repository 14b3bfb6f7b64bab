package domain

import (
	"strconv"
	"strings"
	"time"
)

// Calculator accumulates durations entered as digits followed by a unit.
type Calculator struct {
	ID          string
	Input       string
	Current     Duration
	Accumulator Duration
	UpdatedAt   time.Time
}

// PressDigits appends the digits of s to the pending input.
// Other characters are dropped.
func (c *Calculator) PressDigits(s string) {
	var b strings.Builder
	b.WriteString(c.Input)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	c.Input = b.String()
}

// ApplyUnit adds the pending input, read as a number of units, to Current.
// Input that does not parse as an int is left untouched.
func (c *Calculator) ApplyUnit(unit Unit) error {
	if !unit.IsValid() {
		return ErrInvalidUnit
	}
	n, err := strconv.Atoi(c.Input)
	if err != nil {
		return nil
	}
	c.Current = c.Current.Add(unit.Of(n))
	c.Input = ""
	return nil
}

// Plus moves Current into the Accumulator.
func (c *Calculator) Plus() {
	c.Accumulator = c.Accumulator.Add(c.Current)
	c.Current = Zero
}

// Equals behaves like Plus.
func (c *Calculator) Equals() {
	c.Plus()
}

// Clear resets the input and both durations.
func (c *Calculator) Clear() {
	c.Input = ""
	c.Current = Zero
	c.Accumulator = Zero
}
