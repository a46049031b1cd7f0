package chart

import (
	"math"

	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
)

// Calculator orchestrates an Ephemeris into a D1 chart. It holds no per-call state and
// may be shared across goroutines
type Calculator struct {
	eph    Ephemeris
	method HouseMethod
}

// Option configures a Calculator
type Option func(*Calculator)

// WithHouseMethod overrides the house-division method (default Placidus)
func WithHouseMethod(m HouseMethod) Option {
	return func(c *Calculator) {
		if m != 0 {
			c.method = m
		}
	}
}

// NewCalculator returns a calculator over eph
func NewCalculator(eph Ephemeris, opts ...Option) *Calculator {
	c := &Calculator{eph: eph, method: Placidus}
	for _, o := range opts {
		o(c)
	}
	return c
}

// HouseMethod returns the configured house method
func (c *Calculator) HouseMethod() HouseMethod { return c.method }

// Compute builds the D1 chart for a birth moment and place
func (c *Calculator) Compute(m Moment, geo GeoCoordinate) (Chart, error) {
	if err := m.Validate(); err != nil {
		return Chart{}, perr.WithOp(err, "chart.compute")
	}
	if err := geo.Validate(); err != nil {
		return Chart{}, perr.WithOp(err, "chart.compute")
	}
	if c.eph == nil {
		return Chart{}, perr.Ephemerisf("ephemeris not configured")
	}

	jd, err := c.eph.TimeScale(m.Year, m.Month, m.Day, m.Hour)
	if err != nil {
		return Chart{}, perr.Wrapf(err, perr.ErrorCodeEphemeris, "time scale for %04d-%02d-%02d %.4fh", m.Year, m.Month, m.Day, m.Hour)
	}
	if !finite(float64(jd)) {
		return Chart{}, perr.Ephemerisf("time scale returned %v", jd)
	}

	out := Chart{Positions: make(map[zodiac.Body]BodyPosition, zodiac.BodyCount)}
	for _, b := range zodiac.Queried() {
		ecl, err := c.eph.BodyPosition(jd, b)
		if err != nil {
			return Chart{}, perr.Wrapf(err, perr.ErrorCodeEphemeris, "position of %s", b)
		}
		if !finite(ecl.Longitude, ecl.Latitude, ecl.Distance, ecl.Speed) {
			return Chart{}, perr.Ephemerisf("position of %s is not finite", b)
		}
		out.Positions[b] = BodyPosition{
			Body:       b,
			Longitude:  zodiac.Normalize(ecl.Longitude),
			Latitude:   ecl.Latitude,
			Distance:   ecl.Distance,
			Speed:      ecl.Speed,
			Retrograde: ecl.Speed < 0,
		}
	}
	out.Positions[zodiac.Ketu] = DeriveKetu(out.Positions[zodiac.Rahu])

	h, err := c.eph.Houses(jd, geo.Latitude, geo.Longitude, c.method)
	if err != nil {
		return Chart{}, perr.Wrapf(err, perr.ErrorCodeEphemeris, "houses (%s)", c.method)
	}
	if !finite(h.Ascendant, h.Midheaven) || !finite(h.Cusps[:]...) {
		return Chart{}, perr.Ephemerisf("houses (%s) are not finite", c.method)
	}
	out.Ascendant = zodiac.Normalize(h.Ascendant)
	out.Midheaven = zodiac.Normalize(h.Midheaven)
	for i, v := range h.Cusps {
		out.Cusps[i] = zodiac.Normalize(v)
	}
	return out, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
