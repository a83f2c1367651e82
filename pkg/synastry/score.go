// Package synastry scores the compatibility of two charts: sign-pair
// affinities accumulated per category plus weighted cross-chart aspect
// contributions, clamped to the scheme's declared range. Scoring is
// bit-exact reproducible: bodies and categories are always iterated in
// their declared order, never via unordered containers.
package synastry

import (
	"fmt"

	"github.com/sankalpsthakur/astronova/pkg/chart"
)

// CategoryScore is one category's contribution to the total.
type CategoryScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// Result is the complete compatibility assessment for a chart pair.
type Result struct {
	ChartA       string          `json:"chart_a"`
	ChartB       string          `json:"chart_b"`
	Total        float64         `json:"total"`
	MaxScore     float64         `json:"max_score"`
	Categories   []CategoryScore `json:"categories"`
	AspectBonus  float64         `json:"aspect_bonus"`
	CrossAspects []chart.Aspect  `json:"cross_aspects"`
	Summary      string          `json:"summary"`
}

// Score compares two charts under the scheme. Both charts must place
// every body the scheme's categories reference.
func Score(a, b *chart.Chart, scheme Scheme) (*Result, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}

	categories := make([]CategoryScore, 0, len(scheme.Categories))
	total := 0.0
	for _, cat := range scheme.Categories {
		affinitySum := 0.0
		for _, body := range cat.Bodies {
			pa, ok := a.Placement(body)
			if !ok {
				return nil, fmt.Errorf("chart %s does not place %s", a.ID, body)
			}
			pb, ok := b.Placement(body)
			if !ok {
				return nil, fmt.Errorf("chart %s does not place %s", b.ID, body)
			}
			affinitySum += SignAffinity(pa.Sign, pb.Sign)
		}
		score := cat.Weight * affinitySum / float64(len(cat.Bodies))
		categories = append(categories, CategoryScore{Name: cat.Name, Score: score, Max: cat.Weight})
		total += score
	}

	orb := scheme.Orb
	if orb == 0 {
		orb = chart.DefaultOrb
	}
	crossAspects := chart.DetectAspectsBetween(a.Positions(), b.Positions(), orb)
	bonus := 0.0
	for _, asp := range crossAspects {
		bonus += scheme.AspectWeights[asp.Type]
	}
	total += bonus

	if total < 0 {
		total = 0
	}
	if total > scheme.MaxScore {
		total = scheme.MaxScore
	}

	return &Result{
		ChartA:       a.ID,
		ChartB:       b.ID,
		Total:        total,
		MaxScore:     scheme.MaxScore,
		Categories:   categories,
		AspectBonus:  bonus,
		CrossAspects: crossAspects,
		Summary:      summarize(total, scheme.MaxScore),
	}, nil
}

// summarize maps the score ratio onto a short verdict.
func summarize(total, max float64) string {
	ratio := total / max
	switch {
	case ratio >= 0.85:
		return "exceptional match"
	case ratio >= 0.65:
		return "strong match"
	case ratio >= 0.45:
		return "workable match"
	case ratio >= 0.25:
		return "challenging match"
	default:
		return "difficult match"
	}
}
