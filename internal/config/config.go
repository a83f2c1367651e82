// Package config loads calculation settings from an optional YAML file
// and NATAL_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Chart    ChartConfig    `mapstructure:"chart"`
	Synastry SynastryConfig `mapstructure:"synastry"`
	Dasha    DashaConfig    `mapstructure:"dasha"`
	Server   ServerConfig   `mapstructure:"server"`
}

// ChartConfig holds chart computation settings.
type ChartConfig struct {
	// Mode is "tropical" or "sidereal".
	Mode string `mapstructure:"mode"`
	// AyanamsaDeg is the fixed sidereal offset in degrees.
	AyanamsaDeg float64 `mapstructure:"ayanamsa_deg"`
	// OrbTolerance is the aspect orb in degrees.
	OrbTolerance float64 `mapstructure:"orb_tolerance"`
	// HousePolicy is "equal" or "quadrant".
	HousePolicy string `mapstructure:"house_policy"`
}

// SynastryConfig holds compatibility scoring settings.
type SynastryConfig struct {
	// SchemePath points at a YAML weight scheme. Empty selects the
	// built-in default scheme.
	SchemePath string `mapstructure:"scheme_path"`
}

// DashaConfig holds timeline settings.
type DashaConfig struct {
	// Depth is the number of period levels to expand (1-4).
	Depth int `mapstructure:"depth"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// Load reads configuration from an optional file path plus environment
// variables, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("chart.mode", "tropical")
	v.SetDefault("chart.ayanamsa_deg", 24.1)
	v.SetDefault("chart.orb_tolerance", 5.0)
	v.SetDefault("chart.house_policy", "equal")
	v.SetDefault("synastry.scheme_path", "")
	v.SetDefault("dasha.depth", 2)
	v.SetDefault("server.port", 3000)

	v.SetEnvPrefix("NATAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Chart.Mode {
	case "tropical", "sidereal":
	default:
		return fmt.Errorf("chart.mode %q: want tropical or sidereal", c.Chart.Mode)
	}
	switch c.Chart.HousePolicy {
	case "equal", "quadrant":
	default:
		return fmt.Errorf("chart.house_policy %q: want equal or quadrant", c.Chart.HousePolicy)
	}
	if c.Chart.OrbTolerance < 0 || c.Chart.OrbTolerance > 30 {
		return fmt.Errorf("chart.orb_tolerance %v outside [0, 30]", c.Chart.OrbTolerance)
	}
	if c.Dasha.Depth < 1 || c.Dasha.Depth > 4 {
		return fmt.Errorf("dasha.depth %d outside [1, 4]", c.Dasha.Depth)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside [1, 65535]", c.Server.Port)
	}
	return nil
}
