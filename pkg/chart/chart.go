// Package chart computes natal charts: body placements, houses, and
// aspects derived from ephemeris positions for a single instant. All
// entry points are pure given their injected gateway; a computation
// builds a new Chart and never mutates an existing one.
package chart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/sankalpsthakur/astronova/pkg/astro"
	"github.com/sankalpsthakur/astronova/pkg/ephem"
)

// Config carries the calculation settings for one chart computation.
type Config struct {
	Mode Mode
	// Ayanamsa supplies the sidereal offset. Required in sidereal mode;
	// ignored in tropical mode. Defaults to the fixed Lahiri value.
	Ayanamsa AyanamsaFunc
	// OrbTolerance is the allowed deviation from exact aspect angles.
	// Zero selects DefaultOrb.
	OrbTolerance float64
	// Houses selects the house policy.
	Houses HouseConfig
	// Bodies restricts the computed body set. Empty selects the full
	// canonical set.
	Bodies []astro.Body
}

// Chart is the complete result of one computation: placements in
// canonical body order, the twelve houses, and the classified aspects.
type Chart struct {
	ID         string           `json:"id"`
	Instant    astro.Instant    `json:"instant"`
	Mode       Mode             `json:"mode"`
	Ayanamsa   float64          `json:"ayanamsa,omitempty"`
	Placements []Placement      `json:"placements"`
	Houses     [12]House        `json:"houses"`
	Aspects    []Aspect         `json:"aspects"`
}

// Placement returns the placement for the body, or false if the chart
// does not include it.
func (c *Chart) Placement(b astro.Body) (Placement, bool) {
	for _, p := range c.Placements {
		if p.Position.Body == b {
			return p, true
		}
	}
	return Placement{}, false
}

// Positions returns the adjusted body positions in canonical order.
func (c *Chart) Positions() []astro.BodyPosition {
	out := make([]astro.BodyPosition, len(c.Placements))
	for i, p := range c.Placements {
		out[i] = p.Position
	}
	return out
}

// Compute builds a chart for the instant using the injected gateway.
// Positions are fetched concurrently (each body is independent) and
// assembled in canonical body order so the result is reproducible. A
// missing position is an error for the whole chart, never a placeholder.
func Compute(gw ephem.Gateway, at astro.Instant, cfg Config) (*Chart, error) {
	if gw == nil {
		return nil, &ConfigurationError{Field: "gateway", Reason: "ephemeris gateway is required"}
	}

	bodies := cfg.Bodies
	if len(bodies) == 0 {
		bodies = astro.Bodies
	}

	mode := cfg.Mode
	if mode == "" {
		mode = Tropical
	}
	ayanamsaFn := cfg.Ayanamsa
	if ayanamsaFn == nil {
		ayanamsaFn = FixedAyanamsa(LahiriAyanamsa)
	}
	ayanamsa := 0.0
	if mode == Sidereal {
		ayanamsa = ayanamsaFn(at)
	}

	orb := cfg.OrbTolerance
	if orb == 0 {
		orb = DefaultOrb
	}
	if orb < 0 {
		return nil, &ConfigurationError{Field: "orb_tolerance", Reason: "must be non-negative"}
	}

	// Fan out position fetches; slot results by index so assembly order
	// never depends on goroutine scheduling.
	positions := make([]astro.BodyPosition, len(bodies))
	errs := make([]error, len(bodies))
	var wg sync.WaitGroup
	for i, body := range bodies {
		wg.Add(1)
		go func(i int, body astro.Body) {
			defer wg.Done()
			p, err := gw.Position(body, at)
			if err != nil {
				errs[i] = err
				return
			}
			p.Longitude = AdjustLongitude(p.Longitude, mode, ayanamsa)
			positions[i] = p
		}(i, body)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("position for %s: %w", bodies[i], err)
		}
	}

	houses, err := buildHouses(cfg.Houses, at)
	if err != nil {
		return nil, err
	}

	placements := make([]Placement, len(positions))
	for i, p := range positions {
		pl := place(p)
		pl.House = assignHouse(p.Longitude, houses)
		placements[i] = pl
	}

	return &Chart{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, chartKey(at, mode, positions)).String(),
		Instant:    at,
		Mode:       mode,
		Ayanamsa:   ayanamsa,
		Placements: placements,
		Houses:     houses,
		Aspects:    DetectAspects(positions, orb),
	}, nil
}

// chartKey derives a stable identity for the chart inputs, so identical
// computations carry identical IDs.
func chartKey(at astro.Instant, mode Mode, positions []astro.BodyPosition) []byte {
	key := fmt.Sprintf("%s|%.6f|%.6f|%s", at.Time.UTC().Format("2006-01-02T15:04:05"), at.Latitude, at.Longitude, mode)
	for _, p := range positions {
		key += fmt.Sprintf("|%s:%.9f", p.Body, p.Longitude)
	}
	return []byte(key)
}
