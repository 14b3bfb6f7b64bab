package domain

import (
	"fmt"
	"math"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// Duration is an elapsed time expressed as days, hours and minutes.
// Values built with NewDuration are kept as given; Add returns a
// normalized value with 0 <= Hours < 24 and 0 <= Minutes < 60.
type Duration struct {
	Days    int
	Hours   int
	Minutes int
}

// Zero is the identity element of Add.
var Zero = Duration{}

// NewDuration creates a Duration from its three fields without normalizing.
func NewDuration(days, hours, minutes int) Duration {
	return Duration{Days: days, Hours: hours, Minutes: minutes}
}

// Days returns a Duration of n days.
func Days(n int) Duration { return Duration{Days: n} }

// Hours returns a Duration of n hours.
func Hours(n int) Duration { return Duration{Hours: n} }

// Minutes returns a Duration of n minutes.
func Minutes(n int) Duration { return Duration{Minutes: n} }

// TotalMinutes returns the duration as a single minute count.
// The result saturates instead of overflowing.
func (d Duration) TotalMinutes() int64 {
	total := mulSat(int64(d.Days), minutesPerDay)
	total = addSat(total, mulSat(int64(d.Hours), minutesPerHour))
	return addSat(total, int64(d.Minutes))
}

// Add sums two durations and carries minutes into hours and hours into days.
func (d Duration) Add(other Duration) Duration {
	return FromMinutes(addSat(d.TotalMinutes(), other.TotalMinutes()))
}

// FromMinutes builds a normalized Duration from a total minute count.
func FromMinutes(total int64) Duration {
	return Duration{
		Days:    int(total / minutesPerDay),
		Hours:   int((total % minutesPerDay) / minutesPerHour),
		Minutes: int(total % minutesPerHour),
	}
}

// IsZero reports whether all three fields are zero.
func (d Duration) IsZero() bool {
	return d == Zero
}

// String renders the duration as "{days}d {hours}h {minutes}m".
func (d Duration) String() string {
	return fmt.Sprintf("%dd %dh %dm", d.Days, d.Hours, d.Minutes)
}

// Sum folds values with Add starting from Zero.
func Sum(values ...Duration) Duration {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func addSat(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return p
}
