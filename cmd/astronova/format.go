package main

import (
	"fmt"
	"time"

	"github.com/sankalpsthakur/astronova/pkg/chart"
	"github.com/sankalpsthakur/astronova/pkg/dasha"
	"github.com/sankalpsthakur/astronova/pkg/numerology"
	"github.com/sankalpsthakur/astronova/pkg/profile"
	"github.com/sankalpsthakur/astronova/pkg/synastry"
	"github.com/sankalpsthakur/astronova/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.Actual)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.Hint != "" {
				fmt.Printf("    * %s\n", e.Hint)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.Actual)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printChart(p *profile.Profile, c *chart.Chart) {
	fmt.Printf("Natal Chart: %s\n", p.Name)
	fmt.Println("=============================")
	fmt.Printf("Mode: %s", c.Mode)
	if c.Mode == chart.Sidereal {
		fmt.Printf(" (ayanamsa %.4f)", c.Ayanamsa)
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("Placements:")
	for _, pl := range c.Placements {
		retro := ""
		if pl.Retrograde {
			retro = " R"
		}
		fmt.Printf("  %-8s %7.2f  %s %5.2f  house %d%s\n",
			pl.Position.Body, pl.Position.Longitude, pl.Sign, pl.DegreeInSign, pl.House, retro)
	}

	fmt.Println()
	fmt.Println("Houses:")
	for _, h := range c.Houses {
		fmt.Printf("  %2d  cusp %7.2f  %s (ruled by %s)\n", h.Number, h.Cusp, h.Sign, h.Ruler)
	}

	fmt.Println()
	fmt.Printf("Aspects (%d):\n", len(c.Aspects))
	for _, a := range c.Aspects {
		phase := "separating"
		if a.Applying {
			phase = "applying"
		}
		fmt.Printf("  %-8s %-11s %-8s orb %.2f (%s)\n", a.A, a.Type, a.B, a.Orb, phase)
	}
}

func printSynastry(a, b *profile.Profile, r *synastry.Result) {
	fmt.Printf("Synastry: %s + %s\n", a.Name, b.Name)
	fmt.Println("=============================")
	fmt.Printf("Total: %.2f / %.0f  (%s)\n", r.Total, r.MaxScore, r.Summary)
	fmt.Println()
	fmt.Println("Categories:")
	for _, c := range r.Categories {
		fmt.Printf("  %-10s %6.2f / %.0f\n", c.Name, c.Score, c.Max)
	}
	fmt.Println()
	fmt.Printf("Cross aspects (%d), contribution %+.2f:\n", len(r.CrossAspects), r.AspectBonus)
	for _, asp := range r.CrossAspects {
		fmt.Printf("  %-8s %-11s %-8s orb %.2f\n", asp.A, asp.Type, asp.B, asp.Orb)
	}
}

func printTimeline(p *profile.Profile, tl *dasha.Timeline) {
	fmt.Printf("Vimshottari Timeline: %s\n", p.Name)
	fmt.Println("=============================")
	fmt.Printf("Moon: %.4f sidereal, %s (pada %d)\n", tl.MoonLon, tl.Nakshatra.Name, tl.Nakshatra.Pada)
	fmt.Printf("Birth ruler: %s, balance %.2f years\n", tl.Nakshatra.Ruler, tl.BalanceYears)
	fmt.Println()
	for _, id := range tl.Top {
		top := tl.Periods[id]
		fmt.Printf("%-8s %s -> %s (%.2f years)\n",
			top.Ruler, top.Start.Format("2006-01-02"), top.End().Format("2006-01-02"), top.Years())
		for _, childID := range top.Children {
			sub := tl.Periods[childID]
			fmt.Printf("    %-8s %s -> %s\n",
				sub.Ruler, sub.Start.Format("2006-01-02"), sub.End().Format("2006-01-02"))
		}
	}
}

func printActivePeriod(target time.Time, path []dasha.Period) {
	fmt.Printf("Active periods at %s:\n", target.Format(time.RFC3339))
	for i, p := range path {
		indent := ""
		for j := 0; j < i; j++ {
			indent += "  "
		}
		fmt.Printf("%s%-8s %s -> %s (%.2f years)\n",
			indent, p.Ruler, p.Start.Format("2006-01-02"), p.End().Format("2006-01-02"), p.Years())
	}
}

func printGrid(p *profile.Profile, g numerology.Grid) {
	fmt.Printf("Lo Shu Grid: %s (%s)\n", p.Name, p.Date)
	fmt.Println("=============")
	for _, row := range g {
		fmt.Printf("  %d %d %d\n", row[0], row[1], row[2])
	}
}
