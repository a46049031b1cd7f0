// Package dignity scores each D1 body: sign dignity, functional role from the houses it rules,
// conjunctions, classical aspects (graha drishti) and the pressure they add up to
package dignity

import (
	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/lore"
	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
)

// Role is a body's functional nature for a given ascendant
type Role string

// Functional roles
const (
	FunctionalBenefic Role = "Functional Benefic"
	FunctionalMalefic Role = "Functional Malefic"
	Mixed             Role = "Mixed"
	Neutral           Role = "Neutral / Variable"
)

// Dignity labels, strongest first
const (
	LabelHigh    = "High delivery capacity"
	LabelStable  = "Stable performance"
	LabelNeutral = "Neutral / Learning Phase"
	LabelHandle  = "Requires conscious handling"
)

// Load classes, lightest first
const (
	LoadUnderUtilised = "Under-utilised"
	LoadBalanced      = "Balanced"
	LoadOverloaded    = "Overloaded"
	LoadPressured     = "Highly Pressured"
)

// Report is the per-body analysis
type Report struct {
	Body          zodiac.Body   `json:"body" yaml:"body"`
	CoreTheme     string        `json:"core_theme" yaml:"core_theme"`
	Role          Role          `json:"functional_role" yaml:"functional_role"`
	RuledHouses   []int         `json:"ruled_houses" yaml:"ruled_houses"`
	House         int           `json:"house" yaml:"house"`
	Sign          zodiac.Sign   `json:"sign" yaml:"sign"`
	SignTone      string        `json:"sign_tone" yaml:"sign_tone"`
	DegreeInSign  float64       `json:"degree_in_sign" yaml:"degree_in_sign"`
	Retrograde    bool          `json:"retrograde" yaml:"retrograde"`
	Score         float64       `json:"dignity_score" yaml:"dignity_score"`
	Label         string        `json:"dignity_label" yaml:"dignity_label"`
	Conjunctions  []zodiac.Body `json:"conjunctions" yaml:"conjunctions"`
	AspectedBy    []zodiac.Body `json:"aspected_by" yaml:"aspected_by"`
	Aspects       []zodiac.Body `json:"aspects" yaml:"aspects"`
	Load          float64       `json:"load_score" yaml:"load_score"`
	LoadClass     string        `json:"load_class" yaml:"load_class"`
	Nakshatra     string        `json:"nakshatra" yaml:"nakshatra"`
	NakshatraLord zodiac.Body   `json:"nakshatra_lord" yaml:"nakshatra_lord"`
	Pada          int           `json:"pada" yaml:"pada"`
}

// Score returns the sign dignity of b in sign s: +2 exalted, else +1 own sign, else -2
// debilitated, else 0; retrograde subtracts a further 0.5
func Score(b zodiac.Body, s zodiac.Sign, retrograde bool) float64 {
	var v float64
	switch {
	case zodiac.Exaltation(b) == s:
		v = 2
	case zodiac.Rules(b, s):
		v = 1
	case zodiac.Debilitation(b) == s:
		v = -2
	}
	if retrograde {
		v -= 0.5
	}
	return v
}

// Label maps a dignity score to its label
func Label(score float64) string {
	switch {
	case score >= 2:
		return LabelHigh
	case score >= 0.5:
		return LabelStable
	case score >= -0.5:
		return LabelNeutral
	default:
		return LabelHandle
	}
}

var (
	trikona  = map[int]bool{1: true, 5: true, 9: true}
	dusthana = map[int]bool{6: true, 8: true, 12: true}
)

// RuledHouses returns the whole-sign houses of the signs b rules, ascending from the ascendant
func RuledHouses(b zodiac.Body, asc zodiac.Sign) []int {
	own := zodiac.OwnSigns(b)
	out := make([]int, 0, len(own))
	for h := 1; h <= 12; h++ {
		for _, s := range own {
			if zodiac.HouseFrom(asc, s) == h {
				out = append(out, h)
			}
		}
	}
	return out
}

// FunctionalRole classifies ruled houses: trikona without dusthana is benefic, the reverse
// malefic, both mixed, neither neutral
func FunctionalRole(houses []int) Role {
	var good, bad bool
	for _, h := range houses {
		good = good || trikona[h]
		bad = bad || dusthana[h]
	}
	switch {
	case good && bad:
		return Mixed
	case good:
		return FunctionalBenefic
	case bad:
		return FunctionalMalefic
	default:
		return Neutral
	}
}

// LoadClass maps a load score to its class
func LoadClass(load float64) string {
	switch {
	case load <= 2:
		return LoadUnderUtilised
	case load <= 4:
		return LoadBalanced
	case load <= 6:
		return LoadOverloaded
	default:
		return LoadPressured
	}
}

// Analyze reports on every body of a D1 chart in canonical order
func Analyze(c chart.Chart) ([]Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return analyze(c, lore.Default()), nil
}

func analyze(c chart.Chart, lp *lore.Pack) []Report {
	asc := c.AscendantSign()
	signs := make(map[zodiac.Body]zodiac.Sign, len(c.Positions))
	for b, p := range c.Positions {
		signs[b] = p.Sign()
	}

	out := make([]Report, 0, zodiac.BodyCount)
	for _, b := range zodiac.Bodies() {
		p := c.Positions[b]
		s := signs[b]
		nk := zodiac.NakshatraOf(p.Longitude)
		ruled := RuledHouses(b, asc)

		r := Report{
			Body:          b,
			CoreTheme:     lp.Theme(b),
			Role:          FunctionalRole(ruled),
			RuledHouses:   ruled,
			House:         zodiac.HouseFrom(asc, s),
			Sign:          s,
			SignTone:      lp.Tone(s),
			DegreeInSign:  zodiac.DegreeInSign(p.Longitude),
			Retrograde:    p.Retrograde,
			Score:         Score(b, s, p.Retrograde),
			Conjunctions:  []zodiac.Body{},
			AspectedBy:    []zodiac.Body{},
			Aspects:       []zodiac.Body{},
			Nakshatra:     nk.Nakshatra.Name,
			NakshatraLord: nk.Nakshatra.Lord,
			Pada:          nk.Pada,
		}
		r.Label = Label(r.Score)

		for _, o := range zodiac.Bodies() {
			if o == b {
				continue
			}
			os := signs[o]
			if os == s {
				r.Conjunctions = append(r.Conjunctions, o)
			}
			if Aspects(o, os, s) {
				r.AspectedBy = append(r.AspectedBy, o)
			}
			if Aspects(b, s, os) {
				r.Aspects = append(r.Aspects, o)
			}
		}

		r.Load = float64(len(r.Conjunctions) + len(r.AspectedBy))
		switch r.Role {
		case FunctionalMalefic:
			r.Load++
		case Mixed:
			r.Load += 0.5
		}
		r.LoadClass = LoadClass(r.Load)
		out = append(out, r)
	}
	return out
}
