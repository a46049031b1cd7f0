package zodiac

import "math"

// NakshatraCount is the number of lunar mansions
const NakshatraCount = 27

// NakshatraSpan is the width of one nakshatra (13°20')
const NakshatraSpan = 360.0 / NakshatraCount

// PadaSpan is the width of one quarter of a nakshatra (3°20')
const PadaSpan = NakshatraSpan / 4

// Nakshatra is one of the 27 lunar mansions
type Nakshatra struct {
	Index int    `json:"index" yaml:"index"` // 0-based, Ashwini = 0
	Name  string `json:"name" yaml:"name"`
	Lord  Body   `json:"lord" yaml:"lord"`
}

// Start returns the nakshatra's starting longitude
func (n Nakshatra) Start() float64 { return float64(n.Index) * NakshatraSpan }

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu", "Pushya", "Ashlesha",
	"Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

// Nakshatras returns the full table; lords repeat the Vimsottari order three times
func Nakshatras() []Nakshatra {
	out := make([]Nakshatra, NakshatraCount)
	for i := range out {
		out[i] = NakshatraAt(i)
	}
	return out
}

// NakshatraAt returns the i-th nakshatra (i wraps modulo 27)
func NakshatraAt(i int) Nakshatra {
	i = ((i % NakshatraCount) + NakshatraCount) % NakshatraCount
	return Nakshatra{Index: i, Name: nakshatraNames[i], Lord: vimsottariOrder[i%len(vimsottariOrder)]}
}

// Placement locates a longitude inside the nakshatra belt
type Placement struct {
	Nakshatra Nakshatra `json:"nakshatra" yaml:"nakshatra"`
	Pada      int       `json:"pada" yaml:"pada"`                       // 1..4
	Traversed float64   `json:"traversed" yaml:"traversed"`             // degrees already covered inside the nakshatra
	Fraction  float64   `json:"fraction_elapsed" yaml:"fraction_elapsed"` // Traversed / NakshatraSpan, in [0,1)
}

// StartSnap is the fraction of a nakshatra within which a longitude counts as the next
// nakshatra's start (about 1.3e-10 degrees)
const StartSnap = 1e-11

// NakshatraOf places a longitude: index = floor(lon / span), pada = 1 + floor(traversed / (span/4)).
// Work is done in nakshatra units (lon * 27 / 360) so every start, 120° included, lands on
// fraction 0 of its own nakshatra. A fraction within StartSnap of 1 rolls into the next one
func NakshatraOf(lon float64) Placement {
	scaled := Normalize(lon) * NakshatraCount / 360
	idx := math.Floor(scaled)
	frac := scaled - idx
	if 1-frac < StartSnap && idx < NakshatraCount-1 {
		idx, frac = idx+1, 0
	}
	if idx >= NakshatraCount {
		idx, frac = NakshatraCount-1, math.Nextafter(1, 0)
	}
	frac = math.Max(0, math.Min(frac, math.Nextafter(1, 0)))

	pada := 1 + int(math.Floor(frac*4))
	if pada > 4 {
		pada = 4
	}
	return Placement{
		Nakshatra: NakshatraAt(int(idx)),
		Pada:      pada,
		Traversed: frac * NakshatraSpan,
		Fraction:  frac,
	}
}
