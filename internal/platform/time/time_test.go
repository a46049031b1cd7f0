package time

import (
	"testing"
	"time"
)

func TestFromDecimalHour(t *testing.T) {
	cases := []struct {
		y, m, d int
		hour    float64
		want    time.Time
	}{
		{1990, 1, 1, 0, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
		{1990, 1, 1, 14.5, time.Date(1990, 1, 1, 14, 30, 0, 0, time.UTC)},
		{2000, 2, 29, 23.75, time.Date(2000, 2, 29, 23, 45, 0, 0, time.UTC)},
		{2024, 12, 31, 24, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := FromDecimalHour(c.y, c.m, c.d, c.hour); !got.Equal(c.want) {
			t.Fatalf("FromDecimalHour(%d-%d-%d %.2f) = %v, want %v", c.y, c.m, c.d, c.hour, got, c.want)
		}
	}
}

func TestDecimalHour_RoundTrip(t *testing.T) {
	in := time.Date(1985, 7, 13, 6, 15, 36, 0, time.UTC)
	h := DecimalHour(in)
	if h != 6.26 {
		t.Fatalf("DecimalHour = %v, want 6.26", h)
	}
	if got := FromDecimalHour(1985, 7, 13, h); !got.Equal(in) {
		t.Fatalf("round trip = %v, want %v", got, in)
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct{ y, m, want int }{
		{2023, 2, 28}, {2024, 2, 29}, {1900, 2, 28}, {2000, 2, 29},
		{2024, 4, 30}, {2024, 12, 31}, {2024, 0, 0}, {2024, 13, 0},
	}
	for _, c := range cases {
		if got := DaysIn(c.y, c.m); got != c.want {
			t.Fatalf("DaysIn(%d,%d) = %d, want %d", c.y, c.m, got, c.want)
		}
	}
}

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("Ptr(zero) should be nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr(now) mismatch")
	}
}
