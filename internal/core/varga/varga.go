// Package varga derives divisional (harmonic) charts from a D1 chart using the classical
// Parashari sign tables
package varga

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	str "github.com/ajitrahul/chetna-sub000/internal/platform/strings"
)

// DivisionalChart is a chart re-derived from a parent through harmonic N. It carries the
// same invariants as its parent and owns all of its state
type DivisionalChart struct {
	Harmonic    int    `json:"harmonic" yaml:"harmonic"`
	Name        string `json:"name" yaml:"name"`
	chart.Chart `yaml:",inline"`
}

// Supported lists the harmonics with a table, ascending
func Supported() []int {
	out := make([]int, 0, len(tables))
	for n := range tables {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Name returns the classical name of harmonic n, or "" if unsupported
func Name(n int) string {
	if t, ok := tables[n]; ok {
		return t.name
	}
	return ""
}

var nameAliases = map[string]int{"rashi": 1, "bhamsa": 27, "nakshatramsa": 27, "shastiamsa": 60}

// ParseHarmonic accepts "D9", "d-9", "9" or a classical name like "Navamsa"
func ParseHarmonic(s string) (int, error) {
	k := str.Key(s)
	num := strings.TrimPrefix(k, "d")
	if n, err := strconv.Atoi(num); err == nil {
		if _, ok := tables[n]; ok {
			return n, nil
		}
		return 0, perr.UnsupportedHarmonicf("no table for D%d", n)
	}
	if n, ok := nameAliases[k]; ok {
		return n, nil
	}
	for n, t := range tables {
		if str.Key(t.name) == k {
			return n, nil
		}
	}
	return 0, perr.WithField(perr.InvalidInputf("unknown divisional chart %q", s), "harmonic")
}

// Placement is where one D1 longitude lands in harmonic n
type Placement struct {
	Part      int         `json:"part" yaml:"part"` // 0-based part inside the D1 sign
	Sign      zodiac.Sign `json:"sign" yaml:"sign"`
	Longitude float64     `json:"longitude" yaml:"longitude"`
}

// Place maps a D1 longitude through harmonic n. Part selection is floor only: a degree
// lying exactly on a boundary belongs to the part that starts there
func Place(n int, lon float64) (Placement, error) {
	t, ok := tables[n]
	if !ok {
		return Placement{}, perr.UnsupportedHarmonicf("no table for D%d", n)
	}
	if !zodiac.ValidLongitude(lon) {
		return Placement{}, perr.InvalidLongitudef("longitude %v outside [0,360)", lon)
	}
	return t.place(lon), nil
}

func (t *table) place(lon float64) Placement {
	sign := zodiac.SignOf(lon)
	deg := zodiac.DegreeInSign(lon)

	var part int
	var within float64 // degrees into the varga sign, [0,30)
	if b := t.boundsFor(sign); b != nil {
		part = sort.Search(len(b), func(i int) bool { return b[i] > deg })
		if part >= len(b) {
			part = len(b) - 1
		}
		lo := 0.0
		if part > 0 {
			lo = b[part-1]
		}
		within = zodiac.SignSpan * (deg - lo) / (b[part] - lo)
	} else {
		scaled := deg * float64(t.n)
		part = int(math.Floor(scaled / zodiac.SignSpan))
		within = math.Max(0, scaled-zodiac.SignSpan*float64(part))
		if part >= t.n {
			part, within = t.n-1, math.Nextafter(zodiac.SignSpan, 0)
		}
	}

	vs := t.signs[sign][part]
	out := vs.Start() + within
	if end := vs.Start() + zodiac.SignSpan; out >= end {
		out = math.Nextafter(end, 0)
	}
	return Placement{Part: part, Sign: vs, Longitude: out}
}

// Compute derives the harmonic-n chart. Bodies and the angles are transformed with the same
// table; cusps are whole-sign cusps of the varga ascendant
func Compute(c chart.Chart, n int) (DivisionalChart, error) {
	t, ok := tables[n]
	if !ok {
		return DivisionalChart{}, perr.UnsupportedHarmonicf("no table for D%d", n)
	}
	if err := c.Validate(); err != nil {
		return DivisionalChart{}, err
	}

	out := DivisionalChart{Harmonic: n, Name: t.name}
	out.Positions = make(map[zodiac.Body]chart.BodyPosition, len(c.Positions))
	for b, p := range c.Positions {
		p.Longitude = t.place(p.Longitude).Longitude
		out.Positions[b] = p
	}
	out.Ascendant = t.place(c.Ascendant).Longitude
	if mc := zodiac.Normalize(c.Midheaven); zodiac.ValidLongitude(mc) {
		out.Midheaven = t.place(mc).Longitude
	}
	out.Cusps = chart.WholeSignCusps(out.Ascendant)
	return out, nil
}

// ComputeAll derives several harmonics from one chart; duplicates are computed once.
// It fails on the first unsupported harmonic without returning partial results
func ComputeAll(c chart.Chart, ns ...int) (map[int]DivisionalChart, error) {
	for _, n := range ns {
		if _, ok := tables[n]; !ok {
			return nil, perr.UnsupportedHarmonicf("no table for D%d", n)
		}
	}
	out := make(map[int]DivisionalChart, len(ns))
	for _, n := range ns {
		if _, done := out[n]; done {
			continue
		}
		d, err := Compute(c, n)
		if err != nil {
			return nil, err
		}
		out[n] = d
	}
	return out, nil
}

// Vargottama reports whether b occupies the same sign in D1 and D9
func Vargottama(c chart.Chart, b zodiac.Body) bool {
	p, ok := c.Positions[b]
	if !ok || !zodiac.ValidLongitude(p.Longitude) {
		return false
	}
	return tables[9].place(p.Longitude).Sign == p.Sign()
}
