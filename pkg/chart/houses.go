package chart

import (
	"github.com/sankalpsthakur/astronova/pkg/astro"
	"github.com/sankalpsthakur/astronova/pkg/ephem"
)

// HousePolicy selects how house cusps are derived.
type HousePolicy string

const (
	// PolicyEqual spaces twelve cusps 30 degrees apart from a reference
	// longitude. Used when no precise ascendant is configured; the
	// reference then defaults to 0 degrees Aries.
	PolicyEqual HousePolicy = "equal"
	// PolicyQuadrant anchors house 1 at the ascendant and derives the
	// remaining cusps from a pluggable CuspFunc.
	PolicyQuadrant HousePolicy = "quadrant"
)

// CuspFunc derives twelve cusp longitudes from the ascendant and
// midheaven. The first cusp must equal the ascendant and the sequence
// must advance monotonically around the circle.
type CuspFunc func(ascendant, midheaven float64) [12]float64

// HouseConfig selects the house policy and its inputs.
type HouseConfig struct {
	Policy HousePolicy
	// Ascendant supplies the ascendant longitude. Required for
	// PolicyQuadrant; optional for PolicyEqual (reference falls back to
	// 0 degrees when nil).
	Ascendant ephem.AscendantFunc
	// Midheaven supplies the midheaven longitude for quadrant systems.
	// When nil the midheaven defaults to 90 degrees behind the ascendant.
	Midheaven ephem.AscendantFunc
	// Cusps derives the quadrant cusp sequence. Defaults to PorphyryCusps.
	Cusps CuspFunc
}

// House is one of the twelve houses with its cusp longitude and the sign
// the cusp falls in.
type House struct {
	Number int        `json:"number"` // 1-12
	Cusp   float64    `json:"cusp"`
	Sign   astro.Sign `json:"sign"`
	Ruler  astro.Body `json:"ruler"`
}

// EqualCusps returns twelve cusps spaced 30 degrees from the reference.
func EqualCusps(reference float64) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = astro.Normalize(reference + 30*float64(i))
	}
	return cusps
}

// PorphyryCusps trisects each quadrant between the four angles: the
// ascendant, the IC, the descendant, and the midheaven.
func PorphyryCusps(ascendant, midheaven float64) [12]float64 {
	asc := astro.Normalize(ascendant)
	mc := astro.Normalize(midheaven)
	desc := astro.Normalize(asc + 180)
	ic := astro.Normalize(mc + 180)

	var cusps [12]float64
	fill := func(start int, from, to float64) {
		span := astro.ForwardArc(from, to)
		for i := 0; i < 3; i++ {
			cusps[(start+i)%12] = astro.Normalize(from + span*float64(i)/3)
		}
	}
	fill(0, asc, ic)  // houses 1-3
	fill(3, ic, desc) // houses 4-6
	fill(6, desc, mc) // houses 7-9
	fill(9, mc, asc)  // houses 10-12
	return cusps
}

// buildHouses resolves the configured cusp sequence and validates it.
func buildHouses(cfg HouseConfig, at astro.Instant) ([12]House, error) {
	var cusps [12]float64

	switch cfg.Policy {
	case PolicyEqual, "":
		reference := 0.0
		if cfg.Ascendant != nil {
			asc, err := cfg.Ascendant(at)
			if err != nil {
				return [12]House{}, err
			}
			reference = asc
		}
		cusps = EqualCusps(reference)

	case PolicyQuadrant:
		if cfg.Ascendant == nil {
			return [12]House{}, &ConfigurationError{
				Field:  "houses.ascendant",
				Reason: "quadrant policy requires an ascendant source",
			}
		}
		asc, err := cfg.Ascendant(at)
		if err != nil {
			return [12]House{}, err
		}
		mc := astro.Normalize(asc - 90)
		if cfg.Midheaven != nil {
			mc, err = cfg.Midheaven(at)
			if err != nil {
				return [12]House{}, err
			}
		}
		cuspFn := cfg.Cusps
		if cuspFn == nil {
			cuspFn = PorphyryCusps
		}
		cusps = cuspFn(asc, mc)

	default:
		return [12]House{}, &ConfigurationError{
			Field:  "houses.policy",
			Reason: "unknown house policy " + string(cfg.Policy),
		}
	}

	if err := validateCusps(cusps); err != nil {
		return [12]House{}, err
	}

	var houses [12]House
	for i, c := range cusps {
		sign, _ := astro.SignAt(c)
		houses[i] = House{Number: i + 1, Cusp: c, Sign: sign, Ruler: sign.Ruler()}
	}
	return houses, nil
}

// validateCusps checks that the cusp sequence advances monotonically
// around the circle: the forward arcs between consecutive cusps must be
// positive and sum to a full turn.
func validateCusps(cusps [12]float64) error {
	total := 0.0
	for i := range cusps {
		next := cusps[(i+1)%12]
		arc := astro.ForwardArc(cusps[i], next)
		if arc <= 0 {
			return &ConfigurationError{
				Field:  "houses.cusps",
				Reason: "cusps are not monotonic around the circle",
			}
		}
		total += arc
	}
	if total < 359.999 || total > 360.001 {
		return &ConfigurationError{
			Field:  "houses.cusps",
			Reason: "cusp arcs do not cover the circle exactly once",
		}
	}
	return nil
}

// assignHouse returns the 1-based house whose half-open interval
// [cusp[h], cusp[h+1]) contains the longitude.
func assignHouse(lon float64, houses [12]House) int {
	for i := range houses {
		from := houses[i].Cusp
		to := houses[(i+1)%12].Cusp
		if astro.InArc(lon, from, to) {
			return i + 1
		}
	}
	// Unreachable for validated cusps; the intervals partition the circle.
	return 1
}
