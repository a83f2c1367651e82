package chart

import (
	"math"
	"testing"

	"github.com/sankalpsthakur/astronova/pkg/astro"
)

func TestExactTrine(t *testing.T) {
	positions := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 0},
		{Body: astro.Moon, Longitude: 120},
	}
	aspects := DetectAspects(positions, DefaultOrb)
	if len(aspects) != 1 {
		t.Fatalf("aspect count = %d, want 1", len(aspects))
	}
	a := aspects[0]
	if a.Type != Trine {
		t.Errorf("type = %s, want %s", a.Type, Trine)
	}
	if a.Orb != 0 {
		t.Errorf("orb = %v, want 0", a.Orb)
	}
	if a.Applying {
		t.Error("zero-speed pair should be separating")
	}
}

func TestAspectSymmetry(t *testing.T) {
	a := astro.BodyPosition{Body: astro.Venus, Longitude: 33.4, Speed: 1.2}
	b := astro.BodyPosition{Body: astro.Mars, Longitude: 121.1, Speed: 0.5}

	asp1, ok1 := classify(a, b, DefaultOrb)
	asp2, ok2 := classify(b, a, DefaultOrb)
	if !ok1 || !ok2 {
		t.Fatal("expected an aspect in both directions")
	}
	if asp1.Type != asp2.Type || asp1.Orb != asp2.Orb || asp1.Applying != asp2.Applying {
		t.Errorf("asymmetric classification: %+v vs %+v", asp1, asp2)
	}
}

func TestMinimalOrbWins(t *testing.T) {
	// Separation 58: sextile with orb 2 beats conjunction (orb 58 is out
	// of tolerance anyway). Separation 106 with a wide orb: square (orb
	// 16) vs trine (orb 14): trine wins on smaller orb.
	a := astro.BodyPosition{Body: astro.Sun, Longitude: 0}
	b := astro.BodyPosition{Body: astro.Moon, Longitude: 106}
	asp, ok := classify(a, b, 20)
	if !ok {
		t.Fatal("expected an aspect")
	}
	if asp.Type != Trine {
		t.Errorf("type = %s, want %s", asp.Type, Trine)
	}
	if math.Abs(asp.Orb-14) > 1e-9 {
		t.Errorf("orb = %v, want 14", asp.Orb)
	}
}

func TestTieBreakLowerAngle(t *testing.T) {
	// Separation 30 is equidistant from conjunction (0) and sextile (60).
	a := astro.BodyPosition{Body: astro.Sun, Longitude: 0}
	b := astro.BodyPosition{Body: astro.Moon, Longitude: 30}
	asp, ok := classify(a, b, 30)
	if !ok {
		t.Fatal("expected an aspect")
	}
	if asp.Type != Conjunction {
		t.Errorf("type = %s, want %s (lower angle wins ties)", asp.Type, Conjunction)
	}
}

func TestNoAspectOutsideOrb(t *testing.T) {
	positions := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 0},
		{Body: astro.Moon, Longitude: 40},
	}
	if aspects := DetectAspects(positions, DefaultOrb); len(aspects) != 0 {
		t.Errorf("aspect count = %d, want 0", len(aspects))
	}
}

func TestApplyingSeparating(t *testing.T) {
	// Moon at 117 moving faster than the Sun closes toward the exact
	// trine at 120 separation.
	applying := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 0, Speed: 1.0},
		{Body: astro.Moon, Longitude: 117, Speed: 13.2},
	}
	aspects := DetectAspects(applying, DefaultOrb)
	if len(aspects) != 1 || !aspects[0].Applying {
		t.Errorf("expected one applying aspect, got %+v", aspects)
	}

	// Moon past the exact angle and still faster: the gap widens.
	separating := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 0, Speed: 1.0},
		{Body: astro.Moon, Longitude: 123, Speed: 13.2},
	}
	aspects = DetectAspects(separating, DefaultOrb)
	if len(aspects) != 1 || aspects[0].Applying {
		t.Errorf("expected one separating aspect, got %+v", aspects)
	}
}

func TestDetectAspectsCanonicalOrder(t *testing.T) {
	// Input order must not affect output order.
	shuffled := []astro.BodyPosition{
		{Body: astro.Mars, Longitude: 90},
		{Body: astro.Sun, Longitude: 0},
		{Body: astro.Moon, Longitude: 180},
	}
	ordered := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 0},
		{Body: astro.Moon, Longitude: 180},
		{Body: astro.Mars, Longitude: 90},
	}
	got := DetectAspects(shuffled, DefaultOrb)
	want := DetectAspects(ordered, DefaultOrb)
	if len(got) != len(want) {
		t.Fatalf("count mismatch: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("aspect %d differs: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestDetectAspectsBetween(t *testing.T) {
	setA := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 10},
		{Body: astro.Moon, Longitude: 200},
	}
	setB := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 130}, // trine to A's sun
		{Body: astro.Moon, Longitude: 20}, // opposition to A's moon
	}
	aspects := DetectAspectsBetween(setA, setB, DefaultOrb)

	var foundTrine, foundOpposition bool
	for _, a := range aspects {
		if a.A == astro.Sun && a.B == astro.Sun && a.Type == Trine {
			foundTrine = true
		}
		if a.A == astro.Moon && a.B == astro.Moon && a.Type == Opposition {
			foundOpposition = true
		}
	}
	if !foundTrine {
		t.Error("missing cross-chart sun-sun trine")
	}
	if !foundOpposition {
		t.Error("missing cross-chart moon-moon opposition")
	}
}
