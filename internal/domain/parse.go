package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDuration reads durations such as "2d 5h 9m", "90m" or "1h1h".
// Each <number><unit> token is folded in with Add, so the result is normalized.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}

	total := Zero
	for i := 0; i < len(s); {
		if unicode.IsSpace(rune(s[i])) {
			i++
			continue
		}

		start := i
		if s[i] == '-' || s[i] == '+' {
			i++
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start || (i == start+1 && (s[start] == '-' || s[start] == '+')) {
			return Zero, fmt.Errorf("%w: expected number at %q", ErrInvalidDuration, s[start:])
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return Zero, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, s[start:i], err)
		}
		if i == len(s) {
			return Zero, fmt.Errorf("%w: missing unit after %q", ErrInvalidDuration, s[start:i])
		}

		unit, err := ParseUnit(string(s[i]))
		if err != nil {
			return Zero, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, s[i])
		}
		total = total.Add(unit.Of(n))
		i++
	}
	return total, nil
}

// Unit is one of the three Duration fields.
type Unit string

const (
	UnitDays    Unit = "d"
	UnitHours   Unit = "h"
	UnitMinutes Unit = "m"
)

// ParseUnit accepts "d", "h" or "m".
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(s))
	if !u.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return u, nil
}

// IsValid checks if the unit is one of the allowed values.
func (u Unit) IsValid() bool {
	switch u {
	case UnitDays, UnitHours, UnitMinutes:
		return true
	default:
		return false
	}
}

// Of returns a Duration of n units.
func (u Unit) Of(n int) Duration {
	switch u {
	case UnitDays:
		return Days(n)
	case UnitHours:
		return Hours(n)
	case UnitMinutes:
		return Minutes(n)
	default:
		return Zero
	}
}
