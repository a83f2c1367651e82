package profile

import (
	"fmt"
	"time"

	"github.com/sankalpsthakur/astronova/pkg/astro"
	"github.com/sankalpsthakur/astronova/pkg/validation"
)

// Validate runs schema-level checks on a loaded profile.
func Validate(p *Profile) *validation.Report {
	r := validation.NewReport()

	if p.Name == "" {
		r.AddWarning(validation.Result{
			Level:   validation.LevelSchema,
			Message: "profile has no name",
			Field:   "name",
		})
	}

	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		r.AddError(validation.Result{
			Level:    validation.LevelSchema,
			Message:  "date is not a valid YYYY-MM-DD value",
			Field:    "date",
			Actual:   p.Date,
			Expected: "YYYY-MM-DD",
		})
	}
	if p.Time != "" {
		if _, err := time.Parse("15:04", p.Time); err != nil {
			r.AddError(validation.Result{
				Level:    validation.LevelSchema,
				Message:  "time is not a valid HH:MM value",
				Field:    "time",
				Actual:   p.Time,
				Expected: "HH:MM",
			})
		}
	} else {
		r.AddInfo(validation.Result{
			Level:   validation.LevelSchema,
			Message: "birth time unknown; houses will use the equal policy",
			Field:   "time",
		})
	}

	if p.Latitude < -90 || p.Latitude > 90 {
		r.AddError(validation.Result{
			Level:    validation.LevelSchema,
			Message:  "latitude out of range",
			Field:    "latitude",
			Actual:   p.Latitude,
			Expected: "[-90, 90]",
		})
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		r.AddError(validation.Result{
			Level:    validation.LevelSchema,
			Message:  "longitude out of range",
			Field:    "longitude",
			Actual:   p.Longitude,
			Expected: "[-180, 180]",
		})
	}
	if p.UTCOffsetMinutes < -14*60 || p.UTCOffsetMinutes > 14*60 {
		r.AddError(validation.Result{
			Level:    validation.LevelSchema,
			Message:  "utc offset out of range",
			Field:    "utc_offset_minutes",
			Actual:   p.UTCOffsetMinutes,
			Expected: "[-840, 840]",
		})
	}

	validatePositions(p, r)
	return r
}

// validatePositions checks the position table covers the canonical body
// set with in-range longitudes.
func validatePositions(p *Profile, r *validation.Report) {
	if len(p.Positions) == 0 {
		r.AddWarning(validation.Result{
			Level:   validation.LevelEphemeris,
			Message: "no position table; chart computation needs a live ephemeris gateway",
			Field:   "positions",
		})
		return
	}

	for name, e := range p.Positions {
		if !astro.Body(name).Known() {
			r.AddError(validation.Result{
				Level:   validation.LevelEphemeris,
				Message: fmt.Sprintf("unknown body %q in position table", name),
				Field:   "positions." + name,
			})
		}
		if e.Longitude < 0 || e.Longitude >= 360 {
			r.AddWarning(validation.Result{
				Level:    validation.LevelEphemeris,
				Message:  fmt.Sprintf("longitude for %s will be normalized", name),
				Field:    "positions." + name,
				Actual:   e.Longitude,
				Expected: "[0, 360)",
			})
		}
	}
	for _, body := range astro.Bodies {
		if _, ok := p.Positions[string(body)]; !ok {
			r.AddError(validation.Result{
				Level:    validation.LevelEphemeris,
				Message:  fmt.Sprintf("position table missing %s", body),
				Field:    "positions",
				Expected: "all nine bodies",
			})
		}
	}
}
