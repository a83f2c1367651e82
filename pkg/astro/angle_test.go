package astro

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{359.99, 359.99},
		{360, 0},
		{720.5, 0.5},
		{-30, 330},
		{-360, 0},
		{-720.25, 359.75},
	}
	for _, c := range cases {
		if got := Normalize(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSeparation(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{0, 120, 120},
		{120, 0, 120},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 271, 179},
	}
	for _, c := range cases {
		if got := Separation(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSeparationSymmetric(t *testing.T) {
	for a := 0.0; a < 360; a += 17.3 {
		for b := 0.0; b < 360; b += 23.7 {
			if Separation(a, b) != Separation(b, a) {
				t.Fatalf("Separation(%v, %v) != Separation(%v, %v)", a, b, b, a)
			}
		}
	}
}

func TestInArc(t *testing.T) {
	cases := []struct {
		lon, from, to float64
		want          bool
	}{
		{15, 0, 30, true},
		{30, 0, 30, false}, // half-open
		{0, 0, 30, true},
		{355, 350, 20, true}, // wraps through 0
		{10, 350, 20, true},
		{20, 350, 20, false},
		{180, 350, 20, false},
	}
	for _, c := range cases {
		if got := InArc(c.lon, c.from, c.to); got != c.want {
			t.Errorf("InArc(%v, %v, %v) = %v, want %v", c.lon, c.from, c.to, got, c.want)
		}
	}
}
