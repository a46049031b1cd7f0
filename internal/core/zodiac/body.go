// Package zodiac holds the fixed sidereal reference tables shared by the chart, varga, dasha
// and dignity packages: the nine grahas, the twelve signs, the 27 nakshatras and the
// Vimsottari year table
package zodiac

import (
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	str "github.com/ajitrahul/chetna-sub000/internal/platform/strings"
)

// Body identifies one of the nine grahas
type Body uint8

// Canonical graha order (weekday order, then the lunar nodes)
const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// BodyCount is the number of bodies in every chart
const BodyCount = 9

var bodyNames = [BodyCount]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

// String returns the English graha name
func (b Body) String() string {
	if !b.Valid() {
		return "Unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the nine grahas
func (b Body) Valid() bool { return b < BodyCount }

// IsNode reports whether b is Rahu or Ketu
func (b Body) IsNode() bool { return b == Rahu || b == Ketu }

// MarshalText renders the body by name so maps keyed by Body serialize readably
func (b Body) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, perr.InvalidInputf("unknown body %d", uint8(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText parses a body name (see ParseBody)
func (b *Body) UnmarshalText(text []byte) error {
	v, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Bodies returns all nine bodies in canonical order
func Bodies() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

// Queried returns the eight bodies requested from an ephemeris; Ketu is always derived
func Queried() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu}
}

var bodyAliases = map[string]Body{
	"sun": Sun, "surya": Sun, "su": Sun,
	"moon": Moon, "chandra": Moon, "mo": Moon,
	"mars": Mars, "mangal": Mars, "kuja": Mars, "ma": Mars,
	"mercury": Mercury, "budha": Mercury, "me": Mercury,
	"jupiter": Jupiter, "guru": Jupiter, "brihaspati": Jupiter, "ju": Jupiter,
	"venus": Venus, "shukra": Venus, "sukra": Venus, "ve": Venus,
	"saturn": Saturn, "shani": Saturn, "sani": Saturn, "sa": Saturn,
	"rahu": Rahu, "northnode": Rahu, "ra": Rahu,
	"ketu": Ketu, "southnode": Ketu, "ke": Ketu,
}

// ParseBody resolves an English or Sanskrit graha name or two-letter code, ignoring case,
// accents and spacing ("North Node", "Śukra", " SA ")
func ParseBody(s string) (Body, error) {
	if b, ok := bodyAliases[str.Key(s)]; ok {
		return b, nil
	}
	return 0, perr.InvalidInputf("unknown body %q", s)
}
