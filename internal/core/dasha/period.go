package dasha

import (
	"strings"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	str "github.com/ajitrahul/chetna-sub000/internal/platform/strings"
)

// Level is the nesting depth of a period, Mahadasha = 1
type Level uint8

// Vimsottari levels, coarsest first
const (
	Mahadasha Level = iota + 1
	Antardasha
	Pratyantardasha
	Sookshma
	Prana
)

// MaxDepth is the finest level computed
const MaxDepth = int(Prana)

var levelNames = [...]string{"", "Mahadasha", "Antardasha", "Pratyantardasha", "Sookshma", "Prana"}

func (l Level) String() string {
	if l < Mahadasha || l > Prana {
		return "Unknown"
	}
	return levelNames[l]
}

// MarshalText renders the level by name
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText parses a level name
func (l *Level) UnmarshalText(text []byte) error {
	k := str.Key(string(text))
	for i := Mahadasha; i <= Prana; i++ {
		if str.Key(levelNames[i]) == k {
			*l = i
			return nil
		}
	}
	return perr.InvalidInputf("unknown dasha level %q", string(text))
}

// Period is one node of the timeline. Children tile [Start, End) exactly and are absent at
// the deepest computed level
type Period struct {
	Lord      zodiac.Body `json:"lord" yaml:"lord"`
	Level     Level       `json:"level" yaml:"level"`
	Start     time.Time   `json:"start" yaml:"start"`
	End       time.Time   `json:"end" yaml:"end"`
	IsCurrent bool        `json:"is_current" yaml:"is_current"`
	Children  []Period    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Duration returns End - Start
func (p Period) Duration() time.Duration { return p.End.Sub(p.Start) }

// Contains reports whether t lies in [Start, End)
func (p Period) Contains(t time.Time) bool { return !t.Before(p.Start) && t.Before(p.End) }

// Mark sets IsCurrent along the single chain containing at and clears it everywhere else.
// An instant outside the range marks nothing
func Mark(ps []Period, at time.Time) { mark(ps, at, true) }

func mark(ps []Period, at time.Time, parentCurrent bool) {
	for i := range ps {
		ps[i].IsCurrent = parentCurrent && ps[i].Contains(at)
		mark(ps[i].Children, at, ps[i].IsCurrent)
	}
}

// CurrentChain follows the IsCurrent flags from the top level down
func CurrentChain(ps []Period) []Period {
	var out []Period
	for {
		next := -1
		for i := range ps {
			if ps[i].IsCurrent {
				next = i
				break
			}
		}
		if next < 0 {
			return out
		}
		out = append(out, ps[next])
		ps = ps[next].Children
	}
}

// At returns the chain of periods containing t, one per level, regardless of IsCurrent
func At(ps []Period, t time.Time) []Period {
	var out []Period
	for len(ps) > 0 {
		i := search(ps, t)
		if i < 0 {
			return out
		}
		out = append(out, ps[i])
		ps = ps[i].Children
	}
	return out
}

// search finds the sibling containing t; siblings are contiguous so a binary search on End works
func search(ps []Period, t time.Time) int {
	lo, hi := 0, len(ps)
	for lo < hi {
		mid := (lo + hi) / 2
		if ps[mid].End.After(t) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo < len(ps) && ps[lo].Contains(t) {
		return lo
	}
	return -1
}

// Walk visits periods depth-first in chronological order. Returning false from fn skips
// that period's children
func Walk(ps []Period, fn func(p Period) bool) {
	for _, p := range ps {
		if fn(p) {
			Walk(p.Children, fn)
		}
	}
}

// Flatten returns every period at level l in chronological order, without their children
func Flatten(ps []Period, l Level) []Period {
	var out []Period
	Walk(ps, func(p Period) bool {
		if p.Level == l {
			p.Children = nil
			out = append(out, p)
			return false
		}
		return p.Level < l
	})
	return out
}

// Lords renders a chain as "Jupiter/Saturn/Mercury"
func Lords(chain []Period) string {
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.Lord.String()
	}
	return strings.Join(names, "/")
}
