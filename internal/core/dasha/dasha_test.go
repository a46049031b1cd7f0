package dasha

import (
	"encoding/json"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart/charttest"
	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	birth = time.Date(1990, 4, 15, 6, 30, 0, 0, time.UTC)
	now   = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
)

func fixed(t time.Time) func() time.Time { return func() time.Time { return t } }

func engine(t *testing.T, depth int, at time.Time) *Engine {
	t.Helper()
	e, err := New(Options{Depth: depth, Clock: fixed(at)})
	require.NoError(t, err)
	return e
}

// one full five-level timeline shared by the heavier invariants
var (
	fullOnce sync.Once
	full     Timeline
	fullErr  error
)

func fullTimeline(t *testing.T) Timeline {
	t.Helper()
	fullOnce.Do(func() {
		e, _ := New(Options{Clock: fixed(now)})
		full, fullErr = e.Timeline(45, birth)
	})
	require.NoError(t, fullErr)
	return full
}

func TestYear(t *testing.T) {
	assert.Equal(t, 365*24*time.Hour+6*time.Hour, Year)
	assert.Equal(t, 120*Year, Cycle)
}

func TestTimeline_MoonInRohini(t *testing.T) {
	tl, err := engine(t, 1, now).Timeline(45, birth)
	require.NoError(t, err)

	// 45° = 3 spans + 5°: Rohini, Moon's nakshatra, 5/13.333 = 0.375 elapsed
	assert.Equal(t, 3, tl.Anchor.Nakshatra.Index)
	assert.Equal(t, "Rohini", tl.Anchor.Nakshatra.Name)
	assert.Equal(t, zodiac.Moon, tl.Anchor.Lord)
	assert.InDelta(t, 0.375, tl.Anchor.FractionElapsed, 1e-12)
	assert.Equal(t, 2, tl.Anchor.Pada)

	require.Len(t, tl.Periods, 9)
	first := tl.Periods[0]
	assert.Equal(t, zodiac.Moon, first.Lord)
	assert.Equal(t, birth, first.Start)
	want := float64(10*Year) * (1 - 0.375)
	assert.InDelta(t, want, float64(first.Duration()), float64(time.Microsecond))
	assert.Equal(t, tl.Anchor.Balance, first.Duration())
	assert.Equal(t, 10*Year, tl.Anchor.Balance+tl.Anchor.Elapsed)

	lords := make([]zodiac.Body, 0, 9)
	for _, p := range tl.Periods {
		lords = append(lords, p.Lord)
		assert.Equal(t, Mahadasha, p.Level)
		assert.Nil(t, p.Children, "depth 1 has no children")
	}
	assert.Equal(t, zodiac.DashaOrder(zodiac.Moon), lords)
}

func TestTimeline_CycleIsExactly120Years(t *testing.T) {
	for _, moon := range []float64{0, 13.3, 45, 101.25, 200, 359.9999} {
		tl, err := engine(t, 1, now).Timeline(moon, birth)
		require.NoError(t, err)
		ps := tl.Periods
		assert.Equal(t, Cycle, ps[len(ps)-1].End.Sub(tl.CycleStart), "moon %v", moon)
		assert.Equal(t, tl.End, ps[len(ps)-1].End)
		assert.Equal(t, birth.Sub(tl.CycleStart), tl.Anchor.Elapsed)

		// only the first Mahadasha is truncated
		for _, p := range ps[1:] {
			assert.Equal(t, time.Duration(zodiac.DashaYears(p.Lord))*Year, p.Duration())
		}
		// truncated first + eight full periods == 120 years - elapsed
		assert.Equal(t, Cycle-tl.Anchor.Elapsed, ps[len(ps)-1].End.Sub(ps[0].Start))
	}

	// a Moon at the very start of Ashwini runs a full Ketu period first
	tl, err := engine(t, 1, now).Timeline(0, birth)
	require.NoError(t, err)
	assert.Equal(t, zodiac.Ketu, tl.Periods[0].Lord)
	assert.Equal(t, 7*Year, tl.Periods[0].Duration())
	assert.Equal(t, birth, tl.CycleStart)
}

func TestTimeline_TilesWithoutDrift(t *testing.T) {
	tl := fullTimeline(t)

	var check func(parent Period)
	check = func(parent Period) {
		kids := parent.Children
		if parent.Level == Prana {
			assert.Nil(t, kids)
			return
		}
		require.Len(t, kids, 9)
		assert.Equal(t, parent.Lord, kids[0].Lord, "children start from the parent's own lord")
		assert.Equal(t, parent.Start, kids[0].Start)
		assert.Equal(t, parent.End, kids[8].End)
		var sum time.Duration
		for i, k := range kids {
			assert.Equal(t, parent.Level+1, k.Level)
			assert.True(t, k.End.After(k.Start), "empty %s %s", k.Level, k.Lord)
			if i > 0 {
				assert.Equal(t, kids[i-1].End, k.Start, "gap or overlap")
			}
			sum += k.Duration()
		}
		assert.Equal(t, parent.Duration(), sum)
		for _, k := range kids {
			check(k)
		}
	}

	// the whole first Mahadasha, about 66k nodes
	check(tl.Periods[0])

	// every Prana across the whole cycle sums to birth..end with no drift
	var total time.Duration
	var count int
	prev := tl.Birth
	Walk(tl.Periods, func(p Period) bool {
		if p.Level == Prana {
			require.Equal(t, prev, p.Start)
			prev = p.End
			total += p.Duration()
			count++
		}
		return true
	})
	assert.Equal(t, 59049, count)
	assert.Equal(t, tl.End.Sub(tl.Birth), total)
	assert.Equal(t, tl.End, prev)
}

func TestSubdivide_Proportions(t *testing.T) {
	tl, err := engine(t, 2, now).Timeline(45, birth)
	require.NoError(t, err)
	for _, md := range tl.Periods {
		d := float64(md.Duration())
		for _, ad := range md.Children {
			want := d * float64(zodiac.DashaYears(ad.Lord)) / 120
			assert.InDelta(t, want, float64(ad.Duration()), float64(time.Microsecond), "%s/%s", md.Lord, ad.Lord)
		}
	}
	// a full Venus Mahadasha's Venus Antardasha is 20*20/120 years
	venus := tl.Periods[7]
	require.Equal(t, zodiac.Venus, venus.Lord)
	assert.Equal(t, Year*10/3, venus.Children[0].Duration())
}

func TestCurrentMarking(t *testing.T) {
	tl := fullTimeline(t)

	chain := tl.Current()
	require.Len(t, chain, MaxDepth)
	for i, p := range chain {
		assert.Equal(t, Level(i+1), p.Level)
		assert.True(t, p.Contains(now))
	}
	assert.Equal(t, lordsOf(At(tl.Periods, now)), lordsOf(chain))

	// exactly one current period per level
	perLevel := map[Level]int{}
	Walk(tl.Periods, func(p Period) bool {
		if p.IsCurrent {
			perLevel[p.Level]++
		}
		return true
	})
	for l := Mahadasha; l <= Prana; l++ {
		assert.Equal(t, 1, perLevel[l], "level %s", l)
	}
}

func TestCurrentMarking_BoundaryAndRange(t *testing.T) {
	e := engine(t, 3, now)
	tl, err := e.Timeline(45, birth)
	require.NoError(t, err)

	// an instant on a boundary belongs to the period starting there
	edge := tl.Periods[1].Start
	tl.Remark(edge)
	chain := tl.Current()
	require.Len(t, chain, 3)
	assert.Equal(t, tl.Periods[1].Lord, chain[0].Lord)
	assert.Equal(t, edge, chain[0].Start)
	assert.Equal(t, edge, chain[1].Start)
	assert.Equal(t, edge, chain[2].Start)
	assert.Equal(t, edge, tl.At)

	// before birth and at the end of the cycle nothing is current
	for _, at := range []time.Time{birth.Add(-time.Nanosecond), tl.End} {
		tl.Remark(at)
		assert.Empty(t, tl.Current())
		assert.Empty(t, At(tl.Periods, at))
		Walk(tl.Periods, func(p Period) bool {
			assert.False(t, p.IsCurrent)
			return true
		})
	}

	tl.Remark(birth)
	assert.Len(t, tl.Current(), 3)
	assert.Equal(t, zodiac.Moon, tl.Current()[0].Lord)
}

func TestTimeline_InvalidLongitude(t *testing.T) {
	e := engine(t, 1, now)
	for _, bad := range []float64{360, -0.001, math.NaN(), math.Inf(1)} {
		_, err := e.Timeline(bad, birth)
		require.Error(t, err)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidLongitude), "%v", bad)
		pe, _ := perr.As(err)
		assert.Equal(t, "moon_longitude", pe.Field())
	}
	ps, err := Compute(360, birth)
	assert.Nil(t, ps)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidLongitude))
}

func TestNew_Depth(t *testing.T) {
	for _, bad := range []int{-1, 6} {
		_, err := New(Options{Depth: bad})
		assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidInput), "depth %d", bad)
	}
	e, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, MaxDepth, e.Depth())

	tl, err := engine(t, 2, now).Timeline(45, birth)
	require.NoError(t, err)
	assert.Equal(t, 2, tl.Depth)
	for _, md := range tl.Periods {
		require.Len(t, md.Children, 9)
		for _, ad := range md.Children {
			assert.Nil(t, ad.Children)
		}
	}
}

func TestFromChart(t *testing.T) {
	e := engine(t, 1, now)
	tl, err := e.FromChart(charttest.Chart(), birth)
	require.NoError(t, err)
	assert.Equal(t, zodiac.Moon, tl.Anchor.Lord)

	c := charttest.Chart().Clone()
	delete(c.Positions, zodiac.Moon)
	_, err = e.FromChart(c, birth)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeMalformedChart))
}

func TestFlattenAndLords(t *testing.T) {
	tl, err := engine(t, 3, now).Timeline(45, birth)
	require.NoError(t, err)

	ads := Flatten(tl.Periods, Antardasha)
	require.Len(t, ads, 81)
	for i, p := range ads {
		assert.Equal(t, Antardasha, p.Level)
		assert.Nil(t, p.Children)
		if i > 0 {
			assert.Equal(t, ads[i-1].End, p.Start)
		}
	}
	assert.Len(t, Flatten(tl.Periods, Pratyantardasha), 729)
	assert.Empty(t, Flatten(tl.Periods, Prana))

	chain := At(tl.Periods, birth)
	assert.Equal(t, "Moon/Moon/Moon", Lords(chain))
	assert.Equal(t, "", Lords(nil))
}

func TestLevel_Text(t *testing.T) {
	assert.Equal(t, "Pratyantardasha", Pratyantardasha.String())
	assert.Equal(t, "Unknown", Level(0).String())

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("sookshma")))
	assert.Equal(t, Sookshma, l)
	assert.Error(t, l.UnmarshalText([]byte("yogini")))

	raw, err := json.Marshal(Period{Lord: zodiac.Rahu, Level: Antardasha, Start: birth, End: birth.Add(Year)})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"level":"Antardasha"`)
	assert.Contains(t, string(raw), `"lord":"Rahu"`)
	assert.NotContains(t, string(raw), "children")
}

func lordsOf(ps []Period) []zodiac.Body {
	out := make([]zodiac.Body, len(ps))
	for i, p := range ps {
		out[i] = p.Lord
	}
	return out
}

func TestTimeline_MoonOnNakshatraStart(t *testing.T) {
	e := engine(t, 1, now)
	for k := 0; k < zodiac.NakshatraCount; k++ {
		tl, err := e.Timeline(float64(k)*40/3, birth)
		require.NoError(t, err)

		lord := zodiac.NakshatraAt(k).Lord
		whole := time.Duration(zodiac.DashaYears(lord)) * Year
		assert.Equal(t, k, tl.Anchor.Nakshatra.Index, "k=%d", k)
		assert.Equal(t, lord, tl.Periods[0].Lord, "k=%d", k)
		assert.InDelta(t, float64(whole), float64(tl.Periods[0].Duration()), float64(time.Microsecond), "k=%d", k)
		assert.Equal(t, zodiac.DashaOrder(lord), lordsOf(tl.Periods), "k=%d", k)
	}

	// 0° Leo is the start of Magha: a full seven years of Ketu from birth
	tl, err := e.Timeline(120, birth)
	require.NoError(t, err)
	assert.Equal(t, "Magha", tl.Anchor.Nakshatra.Name)
	assert.Equal(t, zodiac.Ketu, tl.Anchor.Lord)
	assert.Zero(t, tl.Anchor.FractionElapsed)
	assert.Equal(t, 7*Year, tl.Anchor.Balance)
	assert.Equal(t, birth, tl.CycleStart)
	assert.Equal(t, birth.Add(7*Year), tl.Periods[0].End)
}

func TestTimeline_MoonAtNakshatraEndHasNoEmptyPeriods(t *testing.T) {
	e := engine(t, MaxDepth, now)
	for _, frac := range []float64{1 - 2e-11, 1 - 1e-13} {
		// Krittika (Sun, the shortest lord) almost fully crossed
		lon := (2 + frac) * zodiac.NakshatraSpan
		tl, err := e.Timeline(lon, birth)
		require.NoError(t, err)

		empty := 0
		Walk(tl.Periods, func(p Period) bool {
			if !p.End.After(p.Start) {
				empty++
			}
			return true
		})
		assert.Zero(t, empty, "fraction %v", frac)
	}

	// within the snap distance the Moon already belongs to Rohini
	tl, err := engine(t, 1, now).Timeline((3-1e-13)*zodiac.NakshatraSpan, birth)
	require.NoError(t, err)
	assert.Equal(t, zodiac.Moon, tl.Anchor.Lord)
}
