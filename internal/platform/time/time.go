// Package time contains time related helpers
package time

import (
	"math"
	"time"
)

// FromDecimalHour builds a UTC instant from a calendar date and a decimal hour (14.5 = 14:30).
// Hours outside [0,24) roll over into neighbouring days; sub-nanosecond fractions are rounded
func FromDecimalHour(year, month, day int, hour float64) time.Time {
	base := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(math.Round(hour * float64(time.Hour))))
}

// DecimalHour returns the UTC hour of t as a decimal (minutes, seconds and nanoseconds folded in)
func DecimalHour(t time.Time) float64 {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return float64(t.Sub(midnight)) / float64(time.Hour)
}

// DaysIn returns the number of days in the given month of the proleptic Gregorian year
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
