// Package ephem defines the ephemeris gateway boundary: a source of
// geocentric ecliptic positions for the canonical body set. The chart
// pipeline consumes this interface and never constructs a default source
// on its own; callers inject whichever gateway they have.
package ephem

import (
	"errors"
	"fmt"

	"github.com/sankalpsthakur/astronova/pkg/astro"
)

// ErrNotAvailable is returned when a gateway cannot supply a position for
// the requested body and instant. It propagates unchanged to callers; the
// computation core never retries.
var ErrNotAvailable = errors.New("ephemeris data not available")

// ErrInsufficientData is returned by ascendant sources when the instant
// lacks the detail (usually an exact birth time) needed for the answer.
var ErrInsufficientData = errors.New("insufficient data for ascendant")

// Gateway supplies tropical geocentric ecliptic positions. Implementations
// must be deterministic: identical inputs yield identical outputs.
type Gateway interface {
	// Position returns the tropical position of body at the instant.
	// Returns an error wrapping ErrNotAvailable when the body or instant
	// is outside the gateway's coverage.
	Position(body astro.Body, at astro.Instant) (astro.BodyPosition, error)

	// Available reports whether the gateway can supply data for the body.
	Available(body astro.Body) bool
}

// AscendantFunc supplies the ascendant longitude for an instant and
// location, used by the ascendant-anchored house policy. Returns an error
// wrapping ErrInsufficientData when the birth time is not precise enough.
type AscendantFunc func(at astro.Instant) (float64, error)

// FixedAscendant returns an AscendantFunc that always reports the given
// longitude. Useful for profiles that carry a precomputed ascendant.
func FixedAscendant(lon float64) AscendantFunc {
	return func(astro.Instant) (float64, error) {
		return astro.Normalize(lon), nil
	}
}

// Static is a map-backed gateway holding one fixed position per body.
// It backs tests and profiles whose positions were computed upstream.
type Static struct {
	positions map[astro.Body]astro.BodyPosition
}

// NewStatic builds a static gateway from a position list. Longitudes are
// normalized on the way in.
func NewStatic(positions []astro.BodyPosition) *Static {
	m := make(map[astro.Body]astro.BodyPosition, len(positions))
	for _, p := range positions {
		p.Longitude = astro.Normalize(p.Longitude)
		m[p.Body] = p
	}
	return &Static{positions: m}
}

// Position implements Gateway. The instant is ignored: a static gateway
// represents a single precomputed moment.
func (s *Static) Position(body astro.Body, _ astro.Instant) (astro.BodyPosition, error) {
	p, ok := s.positions[body]
	if !ok {
		return astro.BodyPosition{}, fmt.Errorf("%s: %w", body, ErrNotAvailable)
	}
	return p, nil
}

// Available implements Gateway.
func (s *Static) Available(body astro.Body) bool {
	_, ok := s.positions[body]
	return ok
}
