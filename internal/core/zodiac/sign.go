package zodiac

import (
	"math"

	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	str "github.com/ajitrahul/chetna-sub000/internal/platform/strings"
)

// SignSpan is the width of one sign in degrees
const SignSpan = 30.0

// Sign is a zero-based sidereal sign index (Aries = 0 ... Pisces = 11)
type Sign uint8

// Signs in zodiacal order
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Element is the classical element of a sign
type Element uint8

// Elements cycle fire, earth, air, water from Aries
const (
	Fire Element = iota
	Earth
	Air
	Water
)

func (e Element) String() string {
	return [...]string{"Fire", "Earth", "Air", "Water"}[e%4]
}

// Modality is the movable/fixed/dual quality of a sign
type Modality uint8

// Modalities cycle movable, fixed, dual from Aries
const (
	Movable Modality = iota
	Fixed
	Dual
)

func (m Modality) String() string {
	return [...]string{"Movable", "Fixed", "Dual"}[m%3]
}

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signLords = [12]Body{Mars, Venus, Mercury, Moon, Sun, Mercury, Venus, Mars, Jupiter, Saturn, Saturn, Jupiter}

// String returns the English sign name
func (s Sign) String() string { return signNames[s%12] }

// Element returns the sign's element
func (s Sign) Element() Element { return Element(s % 4) }

// Modality returns the sign's modality
func (s Sign) Modality() Modality { return Modality(s % 3) }

// Odd reports whether the sign is odd-numbered counting Aries as 1 (Aries, Gemini, Leo ...)
func (s Sign) Odd() bool { return s%2 == 0 }

// Lord returns the sign's ruling graha
func (s Sign) Lord() Body { return signLords[s%12] }

// Add moves n signs forward (negative n moves backward), wrapping around the zodiac
func (s Sign) Add(n int) Sign { return Sign(((int(s)+n)%12 + 12) % 12) }

// Start returns the sign's starting longitude
func (s Sign) Start() float64 { return float64(s%12) * SignSpan }

// MarshalText renders the sign by name
func (s Sign) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a sign name
func (s *Sign) UnmarshalText(text []byte) error {
	v, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSign resolves an English sign name ignoring case and spacing
func ParseSign(name string) (Sign, error) {
	k := str.Key(name)
	for i, n := range signNames {
		if str.Key(n) == k {
			return Sign(i), nil
		}
	}
	return 0, perr.InvalidInputf("unknown sign %q", name)
}

// Normalize maps any finite longitude into [0,360)
func Normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	if lon >= 360 { // -1e-18 + 360 rounds up
		lon = 0
	}
	return lon
}

// ValidLongitude reports whether lon is finite and in [0,360)
func ValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= 0 && lon < 360
}

// SignOf returns floor(lon/30) for a longitude in [0,360)
func SignOf(lon float64) Sign { return Sign(int(math.Floor(Normalize(lon)/SignSpan)) % 12) }

// DegreeInSign returns lon mod 30
func DegreeInSign(lon float64) float64 { return math.Mod(Normalize(lon), SignSpan) }

// HouseFrom counts whole-sign houses from one sign to another: the same sign is house 1
func HouseFrom(from, to Sign) int { return (int(to)-int(from)+12)%12 + 1 }

// House returns the whole-sign house (1..12) a longitude occupies for the given ascendant
func House(lon, ascendant float64) int { return HouseFrom(SignOf(ascendant), SignOf(lon)) }

var (
	exaltation = [BodyCount]Sign{Aries, Taurus, Capricorn, Virgo, Cancer, Pisces, Libra, Taurus, Scorpio}
	ownSigns   = [BodyCount][]Sign{
		Sun:     {Leo},
		Moon:    {Cancer},
		Mars:    {Aries, Scorpio},
		Mercury: {Gemini, Virgo},
		Jupiter: {Sagittarius, Pisces},
		Venus:   {Taurus, Libra},
		Saturn:  {Capricorn, Aquarius},
	}
)

// Exaltation returns the sign where b is exalted
func Exaltation(b Body) Sign { return exaltation[b] }

// Debilitation returns the sign where b is debilitated (opposite its exaltation)
func Debilitation(b Body) Sign { return exaltation[b].Add(6) }

// OwnSigns returns the signs b rules; the nodes rule none
func OwnSigns(b Body) []Sign {
	if !b.Valid() {
		return nil
	}
	out := make([]Sign, len(ownSigns[b]))
	copy(out, ownSigns[b])
	return out
}

// Rules reports whether b rules sign s
func Rules(b Body, s Sign) bool {
	if !b.Valid() {
		return false
	}
	for _, o := range ownSigns[b] {
		if o == s {
			return true
		}
	}
	return false
}
