package dasha

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova/pkg/astro"
)

func birth() time.Time {
	return time.Date(1990, 1, 15, 14, 30, 0, 0, time.UTC)
}

func TestRulerYearsSumTo120(t *testing.T) {
	total := 0.0
	for _, b := range rulers {
		total += RulerYears(b)
	}
	if total != CycleYears {
		t.Errorf("ruler years sum = %v, want %v", total, CycleYears)
	}
}

func TestNakshatraAt(t *testing.T) {
	cases := []struct {
		lon      float64
		index    int
		name     string
		ruler    astro.Body
		fraction float64
	}{
		{0, 0, "ashwini", astro.Ketu, 0},
		{6.6667, 0, "ashwini", astro.Ketu, 0.5},
		{13.3334, 1, "bharani", astro.Venus, 0},
		{133.3334, 10, "purva_phalguni", astro.Venus, 0},
		{359.9, 26, "revati", astro.Mercury, 0.9925},
	}
	for _, c := range cases {
		n := NakshatraAt(c.lon)
		if n.Index != c.index || n.Name != c.name || n.Ruler != c.ruler {
			t.Errorf("NakshatraAt(%v) = %+v, want index %d %s ruled by %s",
				c.lon, n, c.index, c.name, c.ruler)
		}
		if math.Abs(n.Fraction-c.fraction) > 1e-3 {
			t.Errorf("NakshatraAt(%v) fraction = %v, want ~%v", c.lon, n.Fraction, c.fraction)
		}
	}
}

func TestTopLevelSumsTo120Years(t *testing.T) {
	for _, lon := range []float64{0, 1.7, 45.0, 133.33, 200.5, 359.99} {
		tl, err := Build(lon, birth(), 1)
		if err != nil {
			t.Fatalf("Build(%v) failed: %v", lon, err)
		}
		if len(tl.Top) != 9 {
			t.Fatalf("top-level count = %d, want 9", len(tl.Top))
		}
		total := 0.0
		for _, id := range tl.Top {
			total += tl.Periods[id].Days
		}
		if math.Abs(total-CycleYears*daysPerYear) > 1e-6 {
			t.Errorf("lon %v: top-level days = %v, want %v", lon, total, CycleYears*daysPerYear)
		}
	}
}

func TestChildrenSumToParent(t *testing.T) {
	tl, err := Build(211.4, birth(), 3)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for id, p := range tl.Periods {
		if len(p.Children) == 0 {
			continue
		}
		if len(p.Children) != 9 {
			t.Fatalf("period %d has %d children, want 9", id, len(p.Children))
		}
		sum := 0.0
		for _, c := range p.Children {
			sum += tl.Periods[c].Days
		}
		if math.Abs(sum-p.Days) > 1e-9 {
			t.Errorf("period %d children sum = %v, parent = %v", id, sum, p.Days)
		}
		// Contiguity: each child starts where the previous one ends.
		for i := 1; i < len(p.Children); i++ {
			prev := tl.Periods[p.Children[i-1]]
			cur := tl.Periods[p.Children[i]]
			if !cur.Start.Equal(prev.End()) {
				t.Errorf("period %d child %d start %v != previous end %v",
					id, i, cur.Start, prev.End())
			}
		}
	}
}

func TestBoundaryBalanceFullPeriod(t *testing.T) {
	// Moon exactly at 0: the segment starts here, so the full Ketu
	// period remains.
	tl, err := Build(0, birth(), 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tl.Nakshatra.Ruler != astro.Ketu {
		t.Errorf("birth ruler = %s, want ketu", tl.Nakshatra.Ruler)
	}
	if tl.BalanceYears != 7 {
		t.Errorf("balance = %v years, want full 7", tl.BalanceYears)
	}
	first := tl.Periods[tl.Top[0]]
	if !first.Start.Equal(birth()) {
		t.Errorf("first period start = %v, want birth %v", first.Start, birth())
	}

	// Approaching the boundary from below: almost nothing remains of the
	// Mercury period ruling revati.
	tl, err = Build(359.9999, birth(), 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tl.Nakshatra.Ruler != astro.Mercury {
		t.Errorf("birth ruler = %s, want mercury", tl.Nakshatra.Ruler)
	}
	if tl.BalanceYears > 0.001 {
		t.Errorf("balance = %v years, want ~0", tl.BalanceYears)
	}
}

func TestFindActivePath(t *testing.T) {
	tl, err := Build(0, birth(), 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Just after birth: Ketu mahadasha, Ketu antardasha.
	path, err := tl.FindActive(birth().Add(time.Hour))
	if err != nil {
		t.Fatalf("FindActive failed: %v", err)
	}
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0].Ruler != astro.Ketu || path[1].Ruler != astro.Ketu {
		t.Errorf("path rulers = %s/%s, want ketu/ketu", path[0].Ruler, path[1].Ruler)
	}

	// Ten years in: Ketu's 7 years are over, Venus mahadasha runs.
	path, err = tl.FindActive(addDays(birth(), 10*daysPerYear))
	if err != nil {
		t.Fatalf("FindActive failed: %v", err)
	}
	if path[0].Ruler != astro.Venus {
		t.Errorf("mahadasha at +10y = %s, want venus", path[0].Ruler)
	}
	if path[1].Parent != tl.Top[1] {
		t.Errorf("antardasha parent = %d, want %d", path[1].Parent, tl.Top[1])
	}

	// The target must lie inside every period on the path.
	target := addDays(birth(), 42.5*daysPerYear)
	path, err = tl.FindActive(target)
	if err != nil {
		t.Fatalf("FindActive failed: %v", err)
	}
	for i, p := range path {
		if target.Before(p.Start) || !target.Before(p.End()) {
			t.Errorf("path[%d] %s does not contain target", i, p.Ruler)
		}
	}
}

func TestFindActiveOutOfRange(t *testing.T) {
	tl, err := Build(100, birth(), 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := tl.FindActive(birth().Add(-time.Minute)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("pre-birth error = %v, want ErrOutOfRange", err)
	}
	if _, err := tl.FindActive(tl.Horizon().Add(time.Minute)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("post-horizon error = %v, want ErrOutOfRange", err)
	}
	if _, err := tl.FindActive(tl.Horizon()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("horizon boundary error = %v, want ErrOutOfRange (end exclusive)", err)
	}
}

func TestBuildDepthValidation(t *testing.T) {
	if _, err := Build(0, birth(), 0); err == nil {
		t.Error("depth 0 should be rejected")
	}
	if _, err := Build(0, birth(), MaxDepth+1); err == nil {
		t.Error("excessive depth should be rejected")
	}
}

func TestDeterministic(t *testing.T) {
	a, _ := Build(211.4, birth(), 3)
	b, _ := Build(211.4, birth(), 3)
	if len(a.Periods) != len(b.Periods) {
		t.Fatalf("period counts differ: %d vs %d", len(a.Periods), len(b.Periods))
	}
	for i := range a.Periods {
		pa, pb := a.Periods[i], b.Periods[i]
		if pa.Ruler != pb.Ruler || pa.Days != pb.Days || !pa.Start.Equal(pb.Start) {
			t.Errorf("period %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}
