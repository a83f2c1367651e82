// Package compute wires profiles and settings into the computation
// core: it resolves the gateway, chart configuration, and scheme, then
// delegates to the pure packages. Both the CLI and the server go
// through here so they can never disagree on the pipeline.
package compute

import (
	"fmt"

	"github.com/sankalpsthakur/astronova/internal/config"
	"github.com/sankalpsthakur/astronova/pkg/astro"
	"github.com/sankalpsthakur/astronova/pkg/chart"
	"github.com/sankalpsthakur/astronova/pkg/dasha"
	"github.com/sankalpsthakur/astronova/pkg/numerology"
	"github.com/sankalpsthakur/astronova/pkg/profile"
	"github.com/sankalpsthakur/astronova/pkg/synastry"
	"github.com/sankalpsthakur/astronova/pkg/validation"
)

// LoadAndValidate loads a project profile and runs schema validation.
func LoadAndValidate(projectDir string) (*profile.Profile, *validation.Report, error) {
	prof, err := profile.LoadProject(projectDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading profile: %w", err)
	}
	return prof, profile.Validate(prof), nil
}

// ChartConfig translates settings and a profile into a chart.Config.
// The quadrant policy silently degrades to equal when the profile lacks
// both a birth time and a precomputed ascendant, per the boundary
// contract: the ascendant source is skipped, not failed.
func ChartConfig(cfg *config.Config, prof *profile.Profile) chart.Config {
	houses := chart.HouseConfig{Policy: chart.PolicyEqual, Ascendant: prof.AscendantFunc()}
	if cfg.Chart.HousePolicy == "quadrant" && prof.TimeKnown() && prof.Ascendant != nil {
		houses.Policy = chart.PolicyQuadrant
	}
	return chart.Config{
		Mode:         chart.Mode(cfg.Chart.Mode),
		Ayanamsa:     chart.FixedAyanamsa(cfg.Chart.AyanamsaDeg),
		OrbTolerance: cfg.Chart.OrbTolerance,
		Houses:       houses,
	}
}

// Chart computes the natal chart for a profile.
func Chart(cfg *config.Config, prof *profile.Profile) (*chart.Chart, error) {
	gw, err := prof.Gateway()
	if err != nil {
		return nil, err
	}
	at, err := prof.Instant()
	if err != nil {
		return nil, err
	}
	return chart.Compute(gw, at, ChartConfig(cfg, prof))
}

// Scheme resolves the configured weight scheme.
func Scheme(cfg *config.Config) (synastry.Scheme, error) {
	if cfg.Synastry.SchemePath == "" {
		return synastry.DefaultScheme(), nil
	}
	return synastry.LoadScheme(cfg.Synastry.SchemePath)
}

// Synastry computes both charts and scores them under the configured
// scheme.
func Synastry(cfg *config.Config, a, b *profile.Profile) (*synastry.Result, error) {
	chartA, err := Chart(cfg, a)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", a.Name, err)
	}
	chartB, err := Chart(cfg, b)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", b.Name, err)
	}
	scheme, err := Scheme(cfg)
	if err != nil {
		return nil, err
	}
	return synastry.Score(chartA, chartB, scheme)
}

// Dasha builds the Vimshottari timeline from the profile's Moon. The
// Moon's tropical longitude is converted to sidereal with the
// configured ayanamsa regardless of chart mode; the dasha system is
// sidereal by definition.
func Dasha(cfg *config.Config, prof *profile.Profile) (*dasha.Timeline, error) {
	gw, err := prof.Gateway()
	if err != nil {
		return nil, err
	}
	at, err := prof.Instant()
	if err != nil {
		return nil, err
	}
	moon, err := gw.Position(astro.Moon, at)
	if err != nil {
		return nil, fmt.Errorf("moon position: %w", err)
	}
	moonSidereal := chart.AdjustLongitude(moon.Longitude, chart.Sidereal, cfg.Chart.AyanamsaDeg)
	return dasha.Build(moonSidereal, at.Time, cfg.Dasha.Depth)
}

// Numerology builds the Lo Shu grid for the profile's birth date.
func Numerology(prof *profile.Profile) (numerology.Grid, error) {
	date, err := prof.BirthDate()
	if err != nil {
		return numerology.Grid{}, err
	}
	return numerology.Build(date), nil
}
