package astro

import (
	"math"
	"testing"
)

func TestSignIndexProperty(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 0.5 {
		want := int(math.Floor(lon/30)) % 12
		if got := SignIndex(lon); got != want {
			t.Fatalf("SignIndex(%v) = %d, want %d", lon, got, want)
		}
		_, deg := SignAt(lon)
		if deg < 0 || deg >= 30 {
			t.Fatalf("SignAt(%v) degree = %v, want [0, 30)", lon, deg)
		}
	}
}

func TestSignAtRoundTrip(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 1.25 {
		sign, deg := SignAt(lon)
		back := 30*float64(sign.Index()) + deg
		if math.Abs(back-lon) > 1e-9 {
			t.Errorf("round trip of %v via (%s, %v) = %v", lon, sign, deg, back)
		}
	}
}

func TestSignTables(t *testing.T) {
	cases := []struct {
		sign     Sign
		element  Element
		modality Modality
		ruler    Body
	}{
		{Aries, Fire, Cardinal, Mars},
		{Taurus, Earth, Fixed, Venus},
		{Gemini, Air, Mutable, Mercury},
		{Cancer, Water, Cardinal, Moon},
		{Leo, Fire, Fixed, Sun},
		{Virgo, Earth, Mutable, Mercury},
		{Libra, Air, Cardinal, Venus},
		{Scorpio, Water, Fixed, Mars},
		{Sagittarius, Fire, Mutable, Jupiter},
		{Capricorn, Earth, Cardinal, Saturn},
		{Aquarius, Air, Fixed, Saturn},
		{Pisces, Water, Mutable, Jupiter},
	}
	for _, c := range cases {
		if got := c.sign.Element(); got != c.element {
			t.Errorf("%s element = %s, want %s", c.sign, got, c.element)
		}
		if got := c.sign.Modality(); got != c.modality {
			t.Errorf("%s modality = %s, want %s", c.sign, got, c.modality)
		}
		if got := c.sign.Ruler(); got != c.ruler {
			t.Errorf("%s ruler = %s, want %s", c.sign, got, c.ruler)
		}
	}
}

func TestRetrograde(t *testing.T) {
	if (BodyPosition{Body: Mercury, Speed: -1.2}).Retrograde() != true {
		t.Error("negative speed should be retrograde")
	}
	if (BodyPosition{Body: Sun, Speed: 0.98}).Retrograde() != false {
		t.Error("positive speed should not be retrograde")
	}
	if (BodyPosition{Body: Rahu, Speed: 0}).Retrograde() != false {
		t.Error("zero speed should not be retrograde")
	}
}

func TestBodyIndexOrder(t *testing.T) {
	for i, b := range Bodies {
		if b.Index() != i {
			t.Errorf("%s index = %d, want %d", b, b.Index(), i)
		}
	}
	if Body("pluto").Known() {
		t.Error("pluto should not be a known body")
	}
}
