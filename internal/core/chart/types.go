// Package chart builds the base (D1) sidereal chart from a birth moment and location
// through a narrow ephemeris port. It owns the chart invariants every downstream
// package relies on: nine bodies, each longitude in [0,360)
package chart

import (
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	ptime "github.com/ajitrahul/chetna-sub000/internal/platform/time"
	"github.com/ajitrahul/chetna-sub000/internal/platform/validate"
)

// Moment is a UTC calendar date plus a decimal hour (14.5 = 14:30)
type Moment struct {
	Year  int     `json:"year" yaml:"year" validate:"gte=-5000,lte=9999"`
	Month int     `json:"month" yaml:"month" validate:"gte=1,lte=12"`
	Day   int     `json:"day" yaml:"day" validate:"gte=1,lte=31"`
	Hour  float64 `json:"hour" yaml:"hour" validate:"gte=0,lt=24"`
}

// MomentOf converts an instant to a UTC Moment
func MomentOf(t time.Time) Moment {
	t = t.UTC()
	return Moment{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), Hour: ptime.DecimalHour(t)}
}

// Time returns the instant the moment denotes
func (m Moment) Time() time.Time { return ptime.FromDecimalHour(m.Year, m.Month, m.Day, m.Hour) }

// Validate checks field ranges and that the day exists in its month
func (m Moment) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}
	if n := ptime.DaysIn(m.Year, m.Month); m.Day > n {
		return perr.WithField(perr.InvalidInputf("day %d does not exist in %04d-%02d (%d days)", m.Day, m.Year, m.Month, n), "day")
	}
	return nil
}

// GeoCoordinate is a geographic position in decimal degrees, east and north positive
type GeoCoordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
}

// Validate checks the physical range of both axes
func (g GeoCoordinate) Validate() error { return validate.Struct(g) }

// BodyPosition is one body's ecliptic state; a negative speed means retrograde
type BodyPosition struct {
	Body       zodiac.Body `json:"body" yaml:"body"`
	Longitude  float64     `json:"longitude" yaml:"longitude" validate:"ecliptic"`
	Latitude   float64     `json:"latitude" yaml:"latitude"`
	Distance   float64     `json:"distance" yaml:"distance"`
	Speed      float64     `json:"speed" yaml:"speed"`
	Retrograde bool        `json:"retrograde" yaml:"retrograde"`
}

// Sign returns the sign the body occupies
func (p BodyPosition) Sign() zodiac.Sign { return zodiac.SignOf(p.Longitude) }

// DeriveKetu mirrors Rahu: opposite longitude, negated latitude, same distance and speed
func DeriveKetu(rahu BodyPosition) BodyPosition {
	return BodyPosition{
		Body:       zodiac.Ketu,
		Longitude:  zodiac.Normalize(rahu.Longitude + 180),
		Latitude:   -rahu.Latitude,
		Distance:   rahu.Distance,
		Speed:      rahu.Speed,
		Retrograde: rahu.Retrograde,
	}
}

// Chart is a set of body positions plus the angles of one house frame
type Chart struct {
	Positions map[zodiac.Body]BodyPosition `json:"positions" yaml:"positions"`
	Ascendant float64                      `json:"ascendant" yaml:"ascendant"`
	Midheaven float64                      `json:"midheaven" yaml:"midheaven"`
	Cusps     [12]float64                  `json:"cusps" yaml:"cusps"`
}

// Position returns the position of b
func (c Chart) Position(b zodiac.Body) (BodyPosition, bool) {
	p, ok := c.Positions[b]
	return p, ok
}

// AscendantSign returns the rising sign
func (c Chart) AscendantSign() zodiac.Sign { return zodiac.SignOf(c.Ascendant) }

// House returns the whole-sign house b occupies, or 0 if b is missing
func (c Chart) House(b zodiac.Body) int {
	p, ok := c.Positions[b]
	if !ok {
		return 0
	}
	return zodiac.House(p.Longitude, c.Ascendant)
}

// Ordered returns positions in canonical body order
func (c Chart) Ordered() []BodyPosition {
	out := make([]BodyPosition, 0, len(c.Positions))
	for _, b := range zodiac.Bodies() {
		if p, ok := c.Positions[b]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a chart that shares no mutable state with c
func (c Chart) Clone() Chart {
	out := c
	out.Positions = make(map[zodiac.Body]BodyPosition, len(c.Positions))
	for b, p := range c.Positions {
		out.Positions[b] = p
	}
	return out
}

// Validate enforces the chart invariant: exactly nine bodies keyed by their own id,
// every longitude and the ascendant in [0,360)
func (c Chart) Validate() error {
	if len(c.Positions) != zodiac.BodyCount {
		return perr.MalformedChartf("chart has %d bodies, want %d", len(c.Positions), zodiac.BodyCount)
	}
	for b, p := range c.Positions {
		if !b.Valid() || p.Body != b {
			return perr.MalformedChartf("position keyed %d holds body %d", uint8(b), uint8(p.Body))
		}
		if err := validate.Struct(p); err != nil {
			field := ""
			if e, ok := perr.As(err); ok {
				field = e.Field()
			}
			return perr.WithField(perr.Wrapf(err, perr.ErrorCodeMalformedChart, "%s position", b), field)
		}
	}
	if !zodiac.ValidLongitude(c.Ascendant) {
		return perr.WithField(perr.MalformedChartf("ascendant %v outside [0,360)", c.Ascendant), "ascendant")
	}
	return nil
}

// WholeSignCusps returns twelve cusps at the start of each sign counted from the ascendant's sign
func WholeSignCusps(ascendant float64) [12]float64 {
	var cusps [12]float64
	first := zodiac.SignOf(ascendant)
	for i := range cusps {
		cusps[i] = first.Add(i).Start()
	}
	return cusps
}

// Assemble builds a chart from precomputed positions. Longitudes are normalized, Ketu is
// derived from Rahu when absent, retrograde follows the sign of speed, and cusps default
// to whole-sign cusps when none are given
func Assemble(ascendant, midheaven float64, cusps *[12]float64, positions ...BodyPosition) (Chart, error) {
	c := Chart{
		Positions: make(map[zodiac.Body]BodyPosition, zodiac.BodyCount),
		Ascendant: zodiac.Normalize(ascendant),
		Midheaven: zodiac.Normalize(midheaven),
	}
	for _, p := range positions {
		if !p.Body.Valid() {
			return Chart{}, perr.MalformedChartf("unknown body %d", uint8(p.Body))
		}
		if _, dup := c.Positions[p.Body]; dup {
			return Chart{}, perr.MalformedChartf("duplicate %s position", p.Body)
		}
		p.Longitude = zodiac.Normalize(p.Longitude)
		p.Retrograde = p.Retrograde || p.Speed < 0
		c.Positions[p.Body] = p
	}
	if _, ok := c.Positions[zodiac.Ketu]; !ok {
		if rahu, ok := c.Positions[zodiac.Rahu]; ok {
			c.Positions[zodiac.Ketu] = DeriveKetu(rahu)
		}
	}
	if cusps != nil {
		for i, v := range cusps {
			c.Cusps[i] = zodiac.Normalize(v)
		}
	} else {
		c.Cusps = WholeSignCusps(c.Ascendant)
	}
	if err := c.Validate(); err != nil {
		return Chart{}, err
	}
	return c, nil
}
