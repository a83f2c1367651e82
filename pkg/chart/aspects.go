package chart

import (
	"math"

	"github.com/sankalpsthakur/astronova/pkg/astro"
)

// AspectType classifies an angular relationship between two bodies.
type AspectType string

const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
)

// aspectAngles lists the candidate aspects in ascending angle order. The
// order matters: when two candidates tie on orb, the lower angle wins.
var aspectAngles = []struct {
	Type  AspectType
	Angle float64
}{
	{Conjunction, 0},
	{Sextile, 60},
	{Square, 90},
	{Trine, 120},
	{Opposition, 180},
}

// Angle returns the exact angle for the aspect type, or -1 for an
// unknown type.
func (t AspectType) Angle() float64 {
	for _, a := range aspectAngles {
		if a.Type == t {
			return a.Angle
		}
	}
	return -1
}

// Harmonious reports whether the aspect is traditionally supportive.
// Squares and oppositions are challenging; the rest are harmonious.
func (t AspectType) Harmonious() bool {
	return t == Conjunction || t == Sextile || t == Trine
}

// DefaultOrb is the allowed deviation from an exact aspect angle.
const DefaultOrb = 5.0

// Aspect is a classified angular relationship between two bodies.
type Aspect struct {
	A        astro.Body `json:"a"`
	B        astro.Body `json:"b"`
	Type     AspectType `json:"type"`
	Orb      float64    `json:"orb"`      // absolute deviation from exact
	Applying bool       `json:"applying"` // gap shrinking toward exact
}

// speedStep is the interval, in days, used to probe whether an aspect's
// gap is shrinking or widening.
const speedStep = 1e-3

// classify finds the minimal-orb aspect between two positions, or returns
// false when no candidate angle lies within the orb tolerance.
func classify(a, b astro.BodyPosition, orbTolerance float64) (Aspect, bool) {
	sep := astro.Separation(a.Longitude, b.Longitude)

	best := Aspect{Orb: math.MaxFloat64}
	found := false
	for _, cand := range aspectAngles {
		orb := math.Abs(sep - cand.Angle)
		if orb > orbTolerance {
			continue
		}
		// Strict inequality keeps the lower angle on an exact tie.
		if orb < best.Orb {
			best = Aspect{A: a.Body, B: b.Body, Type: cand.Type, Orb: orb}
			found = true
		}
	}
	if !found {
		return Aspect{}, false
	}

	// Applying when a small step forward in time moves the separation
	// closer to the exact angle. Zero relative speed separates.
	sepLater := astro.Separation(
		a.Longitude+a.Speed*speedStep,
		b.Longitude+b.Speed*speedStep,
	)
	exact := best.Type.Angle()
	best.Applying = math.Abs(sepLater-exact) < math.Abs(sep-exact)
	return best, true
}

// DetectAspects classifies every unordered pair in the position set.
// Positions are iterated in canonical body order, so the output order is
// fixed for a fixed input set.
func DetectAspects(positions []astro.BodyPosition, orbTolerance float64) []Aspect {
	ordered := orderPositions(positions)
	var aspects []Aspect
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if a, ok := classify(ordered[i], ordered[j], orbTolerance); ok {
				aspects = append(aspects, a)
			}
		}
	}
	return aspects
}

// DetectAspectsBetween classifies every cross pair (one body from each
// set), used for synastry cross-chart aspects. Both sets are iterated in
// canonical body order.
func DetectAspectsBetween(setA, setB []astro.BodyPosition, orbTolerance float64) []Aspect {
	orderedA := orderPositions(setA)
	orderedB := orderPositions(setB)
	var aspects []Aspect
	for _, a := range orderedA {
		for _, b := range orderedB {
			if asp, ok := classify(a, b, orbTolerance); ok {
				aspects = append(aspects, asp)
			}
		}
	}
	return aspects
}

// orderPositions returns the positions sorted by canonical body index.
// Unknown bodies sort last in their incoming order.
func orderPositions(positions []astro.BodyPosition) []astro.BodyPosition {
	ordered := make([]astro.BodyPosition, len(positions))
	copy(ordered, positions)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && bodyRank(ordered[j].Body) < bodyRank(ordered[j-1].Body); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}

func bodyRank(b astro.Body) int {
	if idx := b.Index(); idx >= 0 {
		return idx
	}
	return len(astro.Bodies)
}
