package varga

import (
	"fmt"
	"sort"

	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
)

// table is the complete mapping for one harmonic: for each D1 sign, the varga sign of each part.
// bounds is nil for equal parts; otherwise it holds each part's end degree for odd signs,
// evenBounds the same for even signs
type table struct {
	n          int
	name       string
	bounds     []float64
	evenBounds []float64
	signs      [12][]zodiac.Sign
}

func (t *table) parts() int {
	if t.bounds != nil {
		return len(t.bounds)
	}
	return t.n
}

// boundsFor returns the part end degrees for a D1 sign, or nil for equal parts
func (t *table) boundsFor(s zodiac.Sign) []float64 {
	if !s.Odd() && t.evenBounds != nil {
		return t.evenBounds
	}
	return t.bounds
}

// startFn yields the first varga sign for a D1 sign; parts then count forward one sign each
type startFn func(s zodiac.Sign) zodiac.Sign

func same(s zodiac.Sign) zodiac.Sign { return s }

func byParity(odd, even func(zodiac.Sign) zodiac.Sign) startFn {
	return func(s zodiac.Sign) zodiac.Sign {
		if s.Odd() {
			return odd(s)
		}
		return even(s)
	}
}

func byModality(movable, fixed, dual func(zodiac.Sign) zodiac.Sign) startFn {
	return func(s zodiac.Sign) zodiac.Sign {
		switch s.Modality() {
		case zodiac.Movable:
			return movable(s)
		case zodiac.Fixed:
			return fixed(s)
		default:
			return dual(s)
		}
	}
}

func fixedAt(x zodiac.Sign) func(zodiac.Sign) zodiac.Sign { return func(zodiac.Sign) zodiac.Sign { return x } }

func offset(n int) func(zodiac.Sign) zodiac.Sign { return func(s zodiac.Sign) zodiac.Sign { return s.Add(n) } }

// consecutive fills n parts counting forward from start
func consecutive(n int, name string, start startFn) *table {
	t := &table{n: n, name: name}
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		first := start(s)
		row := make([]zodiac.Sign, n)
		for k := range row {
			row[k] = first.Add(k)
		}
		t.signs[s] = row
	}
	return t
}

// stepped places part k at start + k*step signs (Drekkana, Chaturthamsa)
func stepped(n int, name string, step int) *table {
	t := &table{n: n, name: name}
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		row := make([]zodiac.Sign, n)
		for k := range row {
			row[k] = s.Add(k * step)
		}
		t.signs[s] = row
	}
	return t
}

// explicit uses one row for odd signs and one for even signs
func explicit(n int, name string, oddBounds, evenBounds []float64, odd, even []zodiac.Sign) *table {
	t := &table{n: n, name: name}
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		if s.Odd() {
			t.signs[s] = append([]zodiac.Sign(nil), odd...)
		} else {
			t.signs[s] = append([]zodiac.Sign(nil), even...)
		}
	}
	t.bounds, t.evenBounds = oddBounds, evenBounds
	return t
}

var tables = func() map[int]*table {
	all := []*table{
		consecutive(1, "Rasi", same),
		explicit(2, "Hora", nil, nil,
			[]zodiac.Sign{zodiac.Leo, zodiac.Cancer},
			[]zodiac.Sign{zodiac.Cancer, zodiac.Leo}),
		stepped(3, "Drekkana", 4),
		stepped(4, "Chaturthamsa", 3),
		consecutive(7, "Saptamsa", byParity(same, offset(6))),
		consecutive(9, "Navamsa", byModality(same, offset(8), offset(4))),
		consecutive(10, "Dasamsa", byParity(same, offset(8))),
		consecutive(12, "Dwadasamsa", same),
		consecutive(16, "Shodasamsa", byModality(fixedAt(zodiac.Aries), fixedAt(zodiac.Leo), fixedAt(zodiac.Sagittarius))),
		consecutive(20, "Vimsamsa", byModality(fixedAt(zodiac.Aries), fixedAt(zodiac.Sagittarius), fixedAt(zodiac.Leo))),
		consecutive(24, "Chaturvimsamsa", byParity(fixedAt(zodiac.Leo), fixedAt(zodiac.Cancer))),
		consecutive(27, "Saptavimsamsa", byElement),
		explicit(30, "Trimsamsa",
			[]float64{5, 10, 18, 25, 30},
			[]float64{5, 12, 20, 25, 30},
			[]zodiac.Sign{zodiac.Aries, zodiac.Aquarius, zodiac.Sagittarius, zodiac.Gemini, zodiac.Libra},
			[]zodiac.Sign{zodiac.Taurus, zodiac.Virgo, zodiac.Pisces, zodiac.Capricorn, zodiac.Scorpio}),
		consecutive(40, "Khavedamsa", byParity(fixedAt(zodiac.Aries), fixedAt(zodiac.Libra))),
		consecutive(45, "Akshavedamsa", byModality(fixedAt(zodiac.Aries), fixedAt(zodiac.Leo), fixedAt(zodiac.Sagittarius))),
		consecutive(60, "Shashtiamsa", same),
	}
	out := make(map[int]*table, len(all))
	for _, t := range all {
		if err := t.check(); err != nil {
			panic(err)
		}
		out[t.n] = t
	}
	return out
}()

func byElement(s zodiac.Sign) zodiac.Sign {
	return [...]zodiac.Sign{zodiac.Aries, zodiac.Cancer, zodiac.Libra, zodiac.Capricorn}[s.Element()]
}

// check validates completeness once at startup
func (t *table) check() error {
	if t.n < 1 {
		return fmt.Errorf("varga: D%d: harmonic must be positive", t.n)
	}
	for _, b := range [][]float64{t.bounds, t.evenBounds} {
		if b == nil {
			continue
		}
		if !sort.Float64sAreSorted(b) || b[len(b)-1] != zodiac.SignSpan || b[0] <= 0 {
			return fmt.Errorf("varga: D%d: bounds %v must ascend from above 0 to 30", t.n, b)
		}
		for i := 1; i < len(b); i++ {
			if b[i] == b[i-1] {
				return fmt.Errorf("varga: D%d: repeated bound %v", t.n, b[i])
			}
		}
		if len(b) != len(t.bounds) {
			return fmt.Errorf("varga: D%d: odd and even bounds disagree on part count", t.n)
		}
	}
	for s, row := range t.signs {
		if len(row) != t.parts() {
			return fmt.Errorf("varga: D%d: %s has %d parts, want %d", t.n, zodiac.Sign(s), len(row), t.parts())
		}
		for _, v := range row {
			if v > zodiac.Pisces {
				return fmt.Errorf("varga: D%d: %s maps to invalid sign %d", t.n, zodiac.Sign(s), v)
			}
		}
	}
	return nil
}
