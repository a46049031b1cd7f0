// Package dasha computes the Vimsottari planetary-period timeline anchored on the natal Moon.
//
// The nine Mahadashas run in fixed cyclic order from the lord of the Moon's nakshatra; only
// the first is shortened by the part of that nakshatra the Moon had already crossed. Every
// period is then split into the same nine lords, starting from its own lord, in proportion
// to their year-lengths, down to the requested depth.
//
// Boundaries are absolute instants measured in nanoseconds from a 365.25-day year.
// Each child boundary is computed from its parent's start as floor(D * cumulativeYears / 120)
// in exact decimal arithmetic and the last child ends on the parent's end, so siblings tile
// their parent with no gap, overlap or drift at any level.
//
// Resolution is one nanosecond. A Moon within zodiac.StartSnap of a nakshatra's end is
// placed at the next nakshatra's start, which keeps the shortest possible first Mahadasha
// long enough that every Prana still spans at least a few nanoseconds
package dasha

import (
	"time"

	"github.com/ajitrahul/chetna-sub000/internal/core/chart"
	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"

	"github.com/shopspring/decimal"
)

// Year is the fixed year length used for every level
const Year = time.Duration(36525) * 24 * time.Hour / 100

// Cycle is the length of a full Vimsottari cycle
const Cycle = zodiac.VimsottariYears * Year

var (
	cycleYears = decimal.NewFromInt(zodiac.VimsottariYears)
	yearNanos  = decimal.NewFromInt(int64(Year))
)

// Options tunes an Engine
type Options struct {
	// Depth is the number of levels to expand, 1..5 (0 means 5)
	Depth int
	// Clock supplies the evaluation instant for IsCurrent (nil means time.Now)
	Clock func() time.Time
}

// Engine computes timelines. It is stateless apart from its options and safe for concurrent use
type Engine struct {
	depth int
	clock func() time.Time
}

// New returns an engine, rejecting depths outside 1..5
func New(opts Options) (*Engine, error) {
	e := &Engine{depth: opts.Depth, clock: opts.Clock}
	if e.depth == 0 {
		e.depth = MaxDepth
	}
	if e.depth < 1 || e.depth > MaxDepth {
		return nil, perr.WithField(perr.InvalidInputf("dasha depth %d outside 1..%d", opts.Depth, MaxDepth), "depth")
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	return e, nil
}

// Depth returns the configured depth
func (e *Engine) Depth() int { return e.depth }

// Anchor describes how the Moon fixes the start of the cycle
type Anchor struct {
	MoonLongitude   float64          `json:"moon_longitude" yaml:"moon_longitude"`
	Nakshatra       zodiac.Nakshatra `json:"nakshatra" yaml:"nakshatra"`
	Pada            int              `json:"pada" yaml:"pada"`
	Lord            zodiac.Body      `json:"lord" yaml:"lord"`
	FractionElapsed float64          `json:"fraction_elapsed" yaml:"fraction_elapsed"`
	// Elapsed is the part of the first Mahadasha consumed before birth, Balance what remains
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
	Balance time.Duration `json:"balance" yaml:"balance"`
}

// Timeline is a computed cycle with its anchor. CycleStart is where the first Mahadasha would
// have begun untruncated; End - CycleStart is always exactly one Cycle
type Timeline struct {
	Birth      time.Time `json:"birth" yaml:"birth"`
	CycleStart time.Time `json:"cycle_start" yaml:"cycle_start"`
	End        time.Time `json:"end" yaml:"end"`
	At         time.Time `json:"evaluated_at" yaml:"evaluated_at"`
	Depth      int       `json:"depth" yaml:"depth"`
	Anchor     Anchor    `json:"anchor" yaml:"anchor"`
	Periods    []Period  `json:"periods" yaml:"periods"`
}

// Current returns the chain flagged current at the evaluation instant
func (t Timeline) Current() []Period { return CurrentChain(t.Periods) }

// Remark re-evaluates IsCurrent for another instant
func (t *Timeline) Remark(at time.Time) {
	t.At = at
	Mark(t.Periods, at)
}

// Compute returns the nine Mahadashas for a Moon longitude and birth instant, expanded to five
// levels and marked against the wall clock
func Compute(moonLongitude float64, birth time.Time) ([]Period, error) {
	e, _ := New(Options{})
	return e.Compute(moonLongitude, birth)
}

// Compute returns the top-level periods of Timeline
func (e *Engine) Compute(moonLongitude float64, birth time.Time) ([]Period, error) {
	tl, err := e.Timeline(moonLongitude, birth)
	if err != nil {
		return nil, err
	}
	return tl.Periods, nil
}

// FromChart anchors the timeline on the chart's Moon
func (e *Engine) FromChart(c chart.Chart, birth time.Time) (Timeline, error) {
	moon, ok := c.Positions[zodiac.Moon]
	if !ok {
		return Timeline{}, perr.MalformedChartf("chart has no Moon")
	}
	return e.Timeline(moon.Longitude, birth)
}

// Timeline builds the full cycle
func (e *Engine) Timeline(moonLongitude float64, birth time.Time) (Timeline, error) {
	if !zodiac.ValidLongitude(moonLongitude) {
		return Timeline{}, perr.WithField(perr.InvalidLongitudef("moon longitude %v outside [0,360)", moonLongitude), "moon_longitude")
	}

	place := zodiac.NakshatraOf(moonLongitude)
	lord := place.Nakshatra.Lord
	full := decimal.NewFromInt(zodiac.DashaYears(lord)).Mul(yearNanos)
	balance := full.Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(place.Fraction))).Floor()
	elapsed := time.Duration(full.Sub(balance).IntPart())

	tl := Timeline{
		Birth:      birth,
		CycleStart: birth.Add(-elapsed),
		Depth:      e.depth,
		Anchor: Anchor{
			MoonLongitude:   moonLongitude,
			Nakshatra:       place.Nakshatra,
			Pada:            place.Pada,
			Lord:            lord,
			FractionElapsed: place.Fraction,
			Elapsed:         elapsed,
			Balance:         time.Duration(balance.IntPart()),
		},
	}
	tl.End = tl.CycleStart.Add(Cycle)

	// Mahadasha k ends where the untruncated cycle says it does; only the first starts at birth
	tl.Periods = make([]Period, 0, zodiac.BodyCount)
	var cum int64
	start := birth
	for _, l := range zodiac.DashaOrder(lord) {
		cum += zodiac.DashaYears(l)
		end := tl.CycleStart.Add(time.Duration(cum) * Year)
		p := Period{Lord: l, Level: Mahadasha, Start: start, End: end}
		p.Children = subdivide(p, e.depth)
		tl.Periods = append(tl.Periods, p)
		start = end
	}

	tl.Remark(e.clock())
	return tl, nil
}

// subdivide splits p into nine children starting from p's own lord, recursing until depth
func subdivide(p Period, depth int) []Period {
	if int(p.Level) >= depth {
		return nil
	}
	d := decimal.NewFromInt(int64(p.Duration()))
	out := make([]Period, 0, zodiac.BodyCount)
	order := zodiac.DashaOrder(p.Lord)
	var cum int64
	start := p.Start
	for i, l := range order {
		cum += zodiac.DashaYears(l)
		end := p.End
		if i < len(order)-1 {
			q, _ := d.Mul(decimal.NewFromInt(cum)).QuoRem(cycleYears, 0)
			end = p.Start.Add(time.Duration(q.IntPart()))
		}
		c := Period{Lord: l, Level: p.Level + 1, Start: start, End: end}
		c.Children = subdivide(c, depth)
		out = append(out, c)
		start = end
	}
	return out
}
