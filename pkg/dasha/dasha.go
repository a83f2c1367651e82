// Package dasha builds the Vimshottari planetary-period timeline from
// the Moon's sidereal longitude at birth. Periods live in a flat arena
// indexed by node id rather than a pointer tree, which keeps ownership
// trivial and lets the active-period walk iterate without recursion.
package dasha

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sankalpsthakur/astronova/pkg/astro"
)

// ErrOutOfRange is returned when an active-period lookup targets an
// instant before birth or beyond the 120-year horizon.
var ErrOutOfRange = errors.New("target instant outside dasha timeline")

// CycleYears is the total Vimshottari cycle length.
const CycleYears = 120.0

// daysPerYear is the single day-length constant used for every
// years-to-days conversion in this package. All duration arithmetic is
// carried in fractional days to avoid drift across deep subdivision.
const daysPerYear = 365.25

// rulers is the fixed Vimshottari ruler cycle, starting from the ruler
// of Ashwini (the nakshatra beginning at 0 degrees).
var rulers = [9]astro.Body{
	astro.Ketu, astro.Venus, astro.Sun, astro.Moon, astro.Mars,
	astro.Rahu, astro.Jupiter, astro.Saturn, astro.Mercury,
}

// rulerYears holds each ruler's full period length. The nine sum to 120.
var rulerYears = [9]float64{7, 20, 6, 10, 7, 18, 16, 19, 17}

// RulerYears returns the full period length in years for a ruler, or 0
// if the body is not a Vimshottari ruler.
func RulerYears(b astro.Body) float64 {
	for i, r := range rulers {
		if r == b {
			return rulerYears[i]
		}
	}
	return 0
}

// segmentSpan is the width of one nakshatra: 360/27 degrees.
const segmentSpan = 360.0 / 27.0

// nakshatraNames lists the 27 segments in longitude order.
var nakshatraNames = [27]string{
	"ashwini", "bharani", "krittika", "rohini", "mrigashira", "ardra",
	"punarvasu", "pushya", "ashlesha", "magha", "purva_phalguni",
	"uttara_phalguni", "hasta", "chitra", "swati", "vishakha", "anuradha",
	"jyeshtha", "mula", "purva_ashadha", "uttara_ashadha", "shravana",
	"dhanishta", "shatabhisha", "purva_bhadrapada", "uttara_bhadrapada",
	"revati",
}

// Nakshatra describes the birth segment containing the Moon.
type Nakshatra struct {
	Index    int        `json:"index"` // 0-26
	Name     string     `json:"name"`
	Ruler    astro.Body `json:"ruler"`
	Fraction float64    `json:"fraction"` // position within the segment, [0, 1)
	Pada     int        `json:"pada"`     // quarter of the segment, 1-4
}

// NakshatraAt locates the segment containing a sidereal longitude. A
// longitude exactly on a boundary belongs to the segment it starts
// (fraction 0).
func NakshatraAt(moonLon float64) Nakshatra {
	lon := astro.Normalize(moonLon)
	idx := int(math.Floor(lon / segmentSpan))
	if idx > 26 {
		idx = 26
	}
	fraction := (lon - float64(idx)*segmentSpan) / segmentSpan
	pada := int(fraction*4) + 1
	if pada > 4 {
		pada = 4
	}
	return Nakshatra{
		Index:    idx,
		Name:     nakshatraNames[idx],
		Ruler:    rulers[idx%9],
		Fraction: fraction,
		Pada:     pada,
	}
}

// Period is one node in the timeline arena.
type Period struct {
	Ruler    astro.Body `json:"ruler"`
	Level    int        `json:"level"` // 0 = mahadasha, 1 = antardasha, ...
	Start    time.Time  `json:"start"`
	Days     float64    `json:"days"`
	Parent   int        `json:"parent"` // arena index; -1 for top level
	Children []int      `json:"children,omitempty"`
}

// End returns the exclusive end of the period.
func (p Period) End() time.Time {
	return addDays(p.Start, p.Days)
}

// Years returns the period length in years under the package's fixed
// day-length constant.
func (p Period) Years() float64 {
	return p.Days / daysPerYear
}

// Timeline is the full Vimshottari structure for one birth.
type Timeline struct {
	Birth        time.Time `json:"birth"`
	MoonLon      float64   `json:"moon_longitude"`
	Nakshatra    Nakshatra `json:"nakshatra"`
	BalanceYears float64   `json:"balance_years"` // birth ruler's remainder at birth
	Depth        int       `json:"depth"`
	Periods      []Period  `json:"periods"` // arena; Top indexes the level-0 nodes
	Top          []int     `json:"top"`
}

// MaxDepth bounds sub-period recursion: mahadasha, antardasha,
// pratyantardasha, sookshma.
const MaxDepth = 4

// Build constructs the timeline for a birth Moon longitude. depth is the
// number of period levels (1 = top level only). The nine top-level
// periods sum to exactly 120 years; the first one begins before birth at
// the nominal start of the birth ruler's period, so only its balance is
// lived through.
func Build(moonLon float64, birth time.Time, depth int) (*Timeline, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("dasha depth %d outside [1, %d]", depth, MaxDepth)
	}

	nak := NakshatraAt(moonLon)
	startRuler := nak.Index % 9
	birthRulerDays := rulerYears[startRuler] * daysPerYear
	elapsedDays := nak.Fraction * birthRulerDays
	nominalStart := addDays(birth, -elapsedDays)

	tl := &Timeline{
		Birth:        birth,
		MoonLon:      astro.Normalize(moonLon),
		Nakshatra:    nak,
		BalanceYears: (1 - nak.Fraction) * rulerYears[startRuler],
		Depth:        depth,
	}

	start := nominalStart
	for i := 0; i < 9; i++ {
		ruler := (startRuler + i) % 9
		days := rulerYears[ruler] * daysPerYear
		id := tl.addPeriod(Period{
			Ruler:  rulers[ruler],
			Level:  0,
			Start:  start,
			Days:   days,
			Parent: -1,
		})
		tl.Top = append(tl.Top, id)
		tl.subdivide(id, ruler, depth)
		start = addDays(start, days)
	}
	return tl, nil
}

// subdivide expands a period into nine proportional children, recursing
// until the requested depth. The last child absorbs rounding so children
// always sum exactly to their parent.
func (tl *Timeline) subdivide(id, rulerIdx, depth int) {
	parent := tl.Periods[id]
	if parent.Level+1 >= depth {
		return
	}

	start := parent.Start
	remaining := parent.Days
	for i := 0; i < 9; i++ {
		sub := (rulerIdx + i) % 9
		days := parent.Days * rulerYears[sub] / CycleYears
		if i == 8 {
			days = remaining
		}
		childID := tl.addPeriod(Period{
			Ruler:  rulers[sub],
			Level:  parent.Level + 1,
			Start:  start,
			Days:   days,
			Parent: id,
		})
		tl.Periods[id].Children = append(tl.Periods[id].Children, childID)
		tl.subdivide(childID, sub, depth)
		start = addDays(start, days)
		remaining -= days
	}
}

func (tl *Timeline) addPeriod(p Period) int {
	tl.Periods = append(tl.Periods, p)
	return len(tl.Periods) - 1
}

// Horizon returns the exclusive end of the timeline: 120 years after the
// nominal start of the first period.
func (tl *Timeline) Horizon() time.Time {
	last := tl.Periods[tl.Top[len(tl.Top)-1]]
	return last.End()
}

// FindActive returns the nested period path (top level first) containing
// the target instant, down to the timeline's depth. Targets before birth
// or at/after the horizon are out of range; the timeline never wraps.
func (tl *Timeline) FindActive(target time.Time) ([]Period, error) {
	if target.Before(tl.Birth) || !target.Before(tl.Horizon()) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, target.Format(time.RFC3339))
	}

	path := make([]Period, 0, tl.Depth)
	candidates := tl.Top
	for len(candidates) > 0 {
		found := -1
		for _, id := range candidates {
			p := tl.Periods[id]
			if !target.Before(p.Start) && target.Before(p.End()) {
				found = id
				break
			}
		}
		if found < 0 {
			// Floating rounding at a level boundary: clamp to the last
			// candidate rather than failing a lookup inside the horizon.
			found = candidates[len(candidates)-1]
		}
		path = append(path, tl.Periods[found])
		candidates = tl.Periods[found].Children
	}
	return path, nil
}

// addDays shifts a time by a fractional number of days with millisecond
// resolution, the fixed precision used throughout the timeline.
func addDays(t time.Time, days float64) time.Time {
	ms := math.Round(days * 24 * 60 * 60 * 1000)
	return t.Add(time.Duration(ms) * time.Millisecond)
}
