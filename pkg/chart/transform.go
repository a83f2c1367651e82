package chart

import "github.com/sankalpsthakur/astronova/pkg/astro"

// Mode selects the zodiac reference frame.
type Mode string

const (
	Tropical Mode = "tropical"
	Sidereal Mode = "sidereal"
)

// AyanamsaFunc returns the ayanamsa offset in degrees for an instant.
// Sidereal longitudes are tropical longitudes minus this offset.
type AyanamsaFunc func(at astro.Instant) float64

// LahiriAyanamsa is a fixed Lahiri-style offset, adequate for charts in
// the current era. Callers needing a date-dependent model supply their
// own AyanamsaFunc.
const LahiriAyanamsa = 24.1

// FixedAyanamsa returns an AyanamsaFunc with a constant offset.
func FixedAyanamsa(deg float64) AyanamsaFunc {
	return func(astro.Instant) float64 { return deg }
}

// AdjustLongitude converts a tropical longitude into the frame selected
// by mode, normalized to [0, 360). In tropical mode the longitude passes
// through unchanged apart from normalization.
func AdjustLongitude(tropical float64, mode Mode, ayanamsa float64) float64 {
	if mode == Sidereal {
		return astro.Normalize(tropical - ayanamsa)
	}
	return astro.Normalize(tropical)
}

// Placement is a body's adjusted longitude with its derived sign position.
type Placement struct {
	Position     astro.BodyPosition `json:"position"`
	Sign         astro.Sign         `json:"sign"`
	DegreeInSign float64            `json:"degree_in_sign"`
	House        int                `json:"house"`
	Retrograde   bool               `json:"retrograde"`
}

// place derives the sign placement for an already-adjusted position.
func place(p astro.BodyPosition) Placement {
	sign, deg := astro.SignAt(p.Longitude)
	return Placement{
		Position:     p,
		Sign:         sign,
		DegreeInSign: deg,
		Retrograde:   p.Retrograde(),
	}
}
