// Package charttest provides a deterministic in-memory ephemeris and chart fixtures for tests
package charttest

import (
	"sync/atomic"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
)

// Fake is a table-driven ephemeris. Positions do not move with time; TimeScale returns the
// true Julian day so callers can still assert on it
type Fake struct {
	Bodies map[zodiac.Body]chart.Ecliptic
	Frame  chart.HouseCusps

	MinYear  int         // years before this fail with an ephemeris error (0 = unbounded)
	FailBody zodiac.Body // body whose lookup fails when FailErr is set
	FailErr  error

	calls atomic.Int64
}

// Calls returns the number of port calls served
func (f *Fake) Calls() int64 { return f.calls.Load() }

// TimeScale implements chart.Ephemeris
func (f *Fake) TimeScale(year, month, day int, hour float64) (chart.JulianDay, error) {
	f.calls.Add(1)
	if f.MinYear != 0 && year < f.MinYear {
		return 0, perr.Ephemerisf("year %d before supported range", year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return chart.JulianDay(float64(t.Unix())/86400 + 2440587.5 + hour/24), nil
}

// BodyPosition implements chart.Ephemeris
func (f *Fake) BodyPosition(_ chart.JulianDay, b zodiac.Body) (chart.Ecliptic, error) {
	f.calls.Add(1)
	if f.FailErr != nil && b == f.FailBody {
		return chart.Ecliptic{}, f.FailErr
	}
	if b == zodiac.Ketu {
		return chart.Ecliptic{}, perr.Ephemerisf("ketu is derived, never queried")
	}
	e, ok := f.Bodies[b]
	if !ok {
		return chart.Ecliptic{}, perr.Ephemerisf("no data for %s", b)
	}
	return e, nil
}

// Houses implements chart.Ephemeris
func (f *Fake) Houses(_ chart.JulianDay, _, _ float64, _ chart.HouseMethod) (chart.HouseCusps, error) {
	f.calls.Add(1)
	return f.Frame, nil
}

// Sample returns a fake with a fixed, fully populated sky: Leo rising, Moon at 45° in
// Rohini, retrograde Saturn, Rahu in Pisces
func Sample() *Fake {
	return &Fake{
		Bodies: map[zodiac.Body]chart.Ecliptic{
			zodiac.Sun:     {Longitude: 15, Latitude: 0, Distance: 0.99, Speed: 0.98},
			zodiac.Moon:    {Longitude: 45, Latitude: 4.1, Distance: 0.0026, Speed: 13.2},
			zodiac.Mars:    {Longitude: 122, Latitude: 1.2, Distance: 1.5, Speed: 0.6},
			zodiac.Mercury: {Longitude: 122, Latitude: -2.0, Distance: 0.8, Speed: 1.4},
			zodiac.Jupiter: {Longitude: 95, Latitude: 0.3, Distance: 5.1, Speed: 0.08},
			zodiac.Venus:   {Longitude: 350, Latitude: 1.1, Distance: 0.7, Speed: 1.2},
			zodiac.Saturn:  {Longitude: 200, Latitude: 2.2, Distance: 9.4, Speed: -0.03},
			zodiac.Rahu:    {Longitude: 340, Latitude: 0, Distance: 0.0026, Speed: -0.053},
		},
		Frame: chart.HouseCusps{
			Ascendant: 125,
			Midheaven: 35,
			Cusps:     [12]float64{125, 152, 181, 215, 250, 284, 305, 332, 1, 35, 70, 104},
		},
	}
}

// Chart returns the chart Sample produces, assembled without an ephemeris round trip
func Chart() chart.Chart {
	f := Sample()
	ps := make([]chart.BodyPosition, 0, zodiac.BodyCount)
	for _, b := range zodiac.Queried() {
		e := f.Bodies[b]
		ps = append(ps, chart.BodyPosition{
			Body: b, Longitude: e.Longitude, Latitude: e.Latitude, Distance: e.Distance, Speed: e.Speed,
		})
	}
	c, err := chart.Assemble(f.Frame.Ascendant, f.Frame.Midheaven, &f.Frame.Cusps, ps...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithLongitudes returns a copy of Chart with selected longitudes replaced
func WithLongitudes(asc float64, lons map[zodiac.Body]float64) chart.Chart {
	c := Chart().Clone()
	c.Ascendant = zodiac.Normalize(asc)
	c.Cusps = chart.WholeSignCusps(c.Ascendant)
	for b, lon := range lons {
		p := c.Positions[b]
		p.Longitude = zodiac.Normalize(lon)
		c.Positions[b] = p
	}
	return c
}
