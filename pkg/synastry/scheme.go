package synastry

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sankalpsthakur/astronova/pkg/astro"
	"github.com/sankalpsthakur/astronova/pkg/chart"
)

// Category is one scored dimension of compatibility. Its weight is the
// maximum contribution to the total; the bodies listed are compared
// sign-against-sign across the two charts.
type Category struct {
	Name   string       `yaml:"name" json:"name"`
	Bodies []astro.Body `yaml:"bodies" json:"bodies"`
	Weight float64      `yaml:"weight" json:"weight"`
}

// Scheme is a complete weight configuration for synastry scoring. The
// category order is the scoring order; keep it fixed for reproducible
// totals.
type Scheme struct {
	Name       string  `yaml:"name" json:"name"`
	MaxScore   float64 `yaml:"max_score" json:"max_score"`
	Categories []Category `yaml:"categories" json:"categories"`
	// AspectWeights adds (harmonious) or subtracts (challenging) per
	// cross-chart aspect of the given type.
	AspectWeights map[chart.AspectType]float64 `yaml:"aspect_weights" json:"aspect_weights"`
	// Orb overrides the aspect tolerance for cross-chart detection.
	// Zero selects chart.DefaultOrb.
	Orb float64 `yaml:"orb,omitempty" json:"orb,omitempty"`
}

// DefaultScheme is a 36-point scheme in the guna-milan tradition:
// emotional, physical, and mental dimensions weighted over the
// luminaries and personal planets.
func DefaultScheme() Scheme {
	return Scheme{
		Name:     "default-36",
		MaxScore: 36,
		Categories: []Category{
			{Name: "emotional", Bodies: []astro.Body{astro.Moon, astro.Venus}, Weight: 14},
			{Name: "physical", Bodies: []astro.Body{astro.Mars, astro.Venus}, Weight: 10},
			{Name: "mental", Bodies: []astro.Body{astro.Sun, astro.Mercury, astro.Jupiter}, Weight: 12},
		},
		AspectWeights: map[chart.AspectType]float64{
			chart.Conjunction: 1.5,
			chart.Sextile:     1.0,
			chart.Trine:       2.0,
			chart.Square:      -1.5,
			chart.Opposition:  -2.0,
		},
	}
}

// Validate fails fast on a scheme that cannot produce meaningful scores.
func (s Scheme) Validate() error {
	if s.MaxScore <= 0 {
		return &chart.ConfigurationError{Field: "scheme.max_score", Reason: "must be positive"}
	}
	if len(s.Categories) == 0 {
		return &chart.ConfigurationError{Field: "scheme.categories", Reason: "at least one category is required"}
	}
	sum := 0.0
	for _, c := range s.Categories {
		if c.Name == "" {
			return &chart.ConfigurationError{Field: "scheme.categories", Reason: "category missing a name"}
		}
		if c.Weight <= 0 {
			return &chart.ConfigurationError{
				Field:  "scheme.categories." + c.Name,
				Reason: "weight must be positive",
			}
		}
		if len(c.Bodies) == 0 {
			return &chart.ConfigurationError{
				Field:  "scheme.categories." + c.Name,
				Reason: "category lists no bodies",
			}
		}
		for _, b := range c.Bodies {
			if !b.Known() {
				return &chart.ConfigurationError{
					Field:  "scheme.categories." + c.Name,
					Reason: fmt.Sprintf("unknown body %q", b),
				}
			}
		}
		sum += c.Weight
	}
	if math.Abs(sum-s.MaxScore) > 1e-9 {
		return &chart.ConfigurationError{
			Field:  "scheme.max_score",
			Reason: fmt.Sprintf("category weights sum to %v, max_score is %v", sum, s.MaxScore),
		}
	}
	if s.Orb < 0 {
		return &chart.ConfigurationError{Field: "scheme.orb", Reason: "must be non-negative"}
	}
	return nil
}

// LoadScheme reads a weight scheme from a YAML file and validates it.
func LoadScheme(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("reading scheme file: %w", err)
	}
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scheme{}, fmt.Errorf("parsing scheme YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, err
	}
	return s, nil
}
