package chart

import (
	"sync"

	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
)

// JulianDay is the ephemeris' continuous time scale
type JulianDay float64

// Ecliptic is a raw body state as returned by an ephemeris
type Ecliptic struct {
	Longitude float64
	Latitude  float64
	Distance  float64
	Speed     float64 // degrees per day, negative when retrograde
}

// HouseCusps is the house frame for one time and place
type HouseCusps struct {
	Ascendant float64
	Midheaven float64
	Cusps     [12]float64
}

// HouseMethod selects the house-division method, using the conventional single-letter codes
type HouseMethod byte

// Supported house methods
const (
	Placidus      HouseMethod = 'P'
	Koch          HouseMethod = 'K'
	Porphyry      HouseMethod = 'O'
	Regiomontanus HouseMethod = 'R'
	Campanus      HouseMethod = 'C'
	Equal         HouseMethod = 'E'
	WholeSign     HouseMethod = 'W'
	Alcabitius    HouseMethod = 'B'
)

// HouseMethods lists the accepted method codes
func HouseMethods() []string { return []string{"P", "K", "O", "R", "C", "E", "W", "B"} }

// ParseHouseMethod accepts a one-letter method code in either case
func ParseHouseMethod(s string) (HouseMethod, error) {
	if len(s) == 1 {
		c := s[0] &^ 0x20 // upper-case ASCII
		for _, m := range HouseMethods() {
			if m[0] == c {
				return HouseMethod(c), nil
			}
		}
	}
	return 0, perr.InvalidInputf("unknown house method %q", s)
}

func (m HouseMethod) String() string { return string(rune(m)) }

// Ephemeris is the numerical library this engine consumes but never implements.
// Implementations must be safe for concurrent use once constructed
type Ephemeris interface {
	TimeScale(year, month, day int, hour float64) (JulianDay, error)
	BodyPosition(jd JulianDay, body zodiac.Body) (Ecliptic, error)
	Houses(jd JulianDay, lat, lng float64, method HouseMethod) (HouseCusps, error)
}

// Lazy defers building an ephemeris until first use. Concurrent first calls share one
// build; a failed build is remembered and reported on every call
type Lazy struct {
	once  sync.Once
	build func() (Ephemeris, error)
	eph   Ephemeris
	err   error
}

// NewLazy wraps a constructor
func NewLazy(build func() (Ephemeris, error)) *Lazy { return &Lazy{build: build} }

func (l *Lazy) get() (Ephemeris, error) {
	l.once.Do(func() {
		if l.build == nil {
			l.err = perr.Ephemerisf("ephemeris: no constructor")
			return
		}
		eph, err := l.build()
		if err == nil && eph == nil {
			err = perr.Ephemerisf("ephemeris: constructor returned nil")
		}
		if err != nil {
			l.err = perr.Wrap(err, perr.ErrorCodeEphemeris, "ephemeris init")
			return
		}
		l.eph = eph
	})
	return l.eph, l.err
}

// TimeScale implements Ephemeris
func (l *Lazy) TimeScale(year, month, day int, hour float64) (JulianDay, error) {
	eph, err := l.get()
	if err != nil {
		return 0, err
	}
	return eph.TimeScale(year, month, day, hour)
}

// BodyPosition implements Ephemeris
func (l *Lazy) BodyPosition(jd JulianDay, body zodiac.Body) (Ecliptic, error) {
	eph, err := l.get()
	if err != nil {
		return Ecliptic{}, err
	}
	return eph.BodyPosition(jd, body)
}

// Houses implements Ephemeris
func (l *Lazy) Houses(jd JulianDay, lat, lng float64, method HouseMethod) (HouseCusps, error) {
	eph, err := l.get()
	if err != nil {
		return HouseCusps{}, err
	}
	return eph.Houses(jd, lat, lng, method)
}
