// Package profile loads birth profiles: the civil birth data and,
// optionally, a precomputed position table and ascendant that let the
// computation core run without a live ephemeris source.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sankalpsthakur/astronova/pkg/astro"
	"github.com/sankalpsthakur/astronova/pkg/ephem"
)

// Profile is a birth record as stored on disk.
type Profile struct {
	Name string `yaml:"name" json:"name"`
	// Date is the calendar birth date, YYYY-MM-DD.
	Date string `yaml:"date" json:"date"`
	// Time is the local birth time, HH:MM. Empty when the birth time is
	// unknown; house computation then falls back to the equal policy.
	Time string `yaml:"time,omitempty" json:"time,omitempty"`
	// UTCOffsetMinutes shifts the local time to UTC.
	UTCOffsetMinutes int     `yaml:"utc_offset_minutes" json:"utc_offset_minutes"`
	Latitude         float64 `yaml:"latitude" json:"latitude"`
	Longitude        float64 `yaml:"longitude" json:"longitude"`
	// Ascendant is a precomputed ascendant longitude in degrees, when the
	// upstream ephemeris supplied one. Nil means not available.
	Ascendant *float64 `yaml:"ascendant,omitempty" json:"ascendant,omitempty"`
	// Positions is the precomputed tropical position table for the birth
	// instant.
	Positions ephem.Table `yaml:"positions,omitempty" json:"positions,omitempty"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	return &p, nil
}

// LoadProject loads a profile from a project directory. It looks for
// natal.yaml in the given directory.
func LoadProject(projectDir string) (*Profile, error) {
	return Load(filepath.Join(projectDir, "natal.yaml"))
}

// TimeKnown reports whether the profile carries an exact birth time.
func (p *Profile) TimeKnown() bool {
	return p.Time != ""
}

// BirthDate parses the calendar date alone, midnight UTC. Used by the
// numerology grid, which only needs the digits.
func (p *Profile) BirthDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing profile date: %w", err)
	}
	return t, nil
}

// Instant builds the birth Instant in UTC. An unknown birth time
// resolves to noon local, the conventional midpoint when only the date
// is known.
func (p *Profile) Instant() (astro.Instant, error) {
	clock := p.Time
	if clock == "" {
		clock = "12:00"
	}
	t, err := time.Parse("2006-01-02 15:04", p.Date+" "+clock)
	if err != nil {
		return astro.Instant{}, fmt.Errorf("parsing profile date/time: %w", err)
	}
	utc := t.Add(-time.Duration(p.UTCOffsetMinutes) * time.Minute)
	return astro.NewInstant(utc, p.Latitude, p.Longitude), nil
}

// Gateway builds a static ephemeris gateway from the profile's position
// table.
func (p *Profile) Gateway() (*ephem.Static, error) {
	if len(p.Positions) == 0 {
		return nil, fmt.Errorf("profile %q carries no position table", p.Name)
	}
	return p.Positions.Gateway()
}

// AscendantFunc returns the profile's precomputed ascendant as an
// ephem.AscendantFunc, or nil when the profile has none.
func (p *Profile) AscendantFunc() ephem.AscendantFunc {
	if p.Ascendant == nil {
		return nil
	}
	return ephem.FixedAscendant(*p.Ascendant)
}
