package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sankalpsthakur/astronova/internal/compute"
	"github.com/sankalpsthakur/astronova/internal/config"
	"github.com/sankalpsthakur/astronova/pkg/profile"
)

// loadAll loads settings plus the project profile and fails on schema
// errors before any computation runs.
func loadAll(configPath, projectPath string) (*config.Config, *profile.Profile, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	prof, report, err := compute.LoadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return nil, nil, fmt.Errorf("profile has validation errors")
	}
	return cfg, prof, nil
}

func runChart(configPath, projectPath string, asJSON bool) error {
	cfg, prof, err := loadAll(configPath, projectPath)
	if err != nil {
		return err
	}
	c, err := compute.Chart(cfg, prof)
	if err != nil {
		return err
	}
	if asJSON {
		return emitJSON(c)
	}
	printChart(prof, c)
	return nil
}

func runSynastry(configPath, projectPath, partnerPath string, asJSON bool) error {
	cfg, prof, err := loadAll(configPath, projectPath)
	if err != nil {
		return err
	}
	partner, report, err := compute.LoadAndValidate(partnerPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("partner profile has validation errors")
	}

	result, err := compute.Synastry(cfg, prof, partner)
	if err != nil {
		return err
	}
	if asJSON {
		return emitJSON(result)
	}
	printSynastry(prof, partner, result)
	return nil
}

func runDasha(configPath, projectPath, at string, asJSON bool) error {
	cfg, prof, err := loadAll(configPath, projectPath)
	if err != nil {
		return err
	}
	tl, err := compute.Dasha(cfg, prof)
	if err != nil {
		return err
	}

	if at != "" {
		target, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
		path, err := tl.FindActive(target)
		if err != nil {
			return err
		}
		if asJSON {
			return emitJSON(map[string]any{"target": target, "path": path})
		}
		printActivePeriod(target, path)
		return nil
	}

	if asJSON {
		return emitJSON(tl)
	}
	printTimeline(prof, tl)
	return nil
}

func runNumerology(projectPath string) error {
	prof, report, err := compute.LoadAndValidate(projectPath)
	if err != nil {
		return err
	}
	// Only the date matters here; position warnings are irrelevant.
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("profile has validation errors")
	}
	grid, err := compute.Numerology(prof)
	if err != nil {
		return err
	}
	printGrid(prof, grid)
	return nil
}

func runValidate(projectPath string) error {
	_, report, err := compute.LoadAndValidate(projectPath)
	if err != nil {
		return err
	}
	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
