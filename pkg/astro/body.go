package astro

// Body identifies a celestial body used in chart computation.
type Body string

const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Rahu    Body = "rahu" // north lunar node
	Ketu    Body = "ketu" // south lunar node
)

// Bodies is the canonical body set in its fixed iteration order.
// All per-body loops in the library follow this order so results are
// reproducible regardless of how intermediate values were gathered.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}

// Luminaries are the bodies carrying the most weight in compatibility work.
var Luminaries = []Body{Sun, Moon}

// Index returns the position of b in the canonical order, or -1 if b is
// not a known body.
func (b Body) Index() int {
	for i, known := range Bodies {
		if known == b {
			return i
		}
	}
	return -1
}

// Known reports whether b is one of the canonical bodies.
func (b Body) Known() bool {
	return b.Index() >= 0
}

// BodyPosition is a geocentric ecliptic position supplied by an
// ephemeris source. Longitude is always normalized into [0, 360).
type BodyPosition struct {
	Body      Body    `json:"body"`
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"` // degrees/day; negative means retrograde
	Latitude  float64 `json:"latitude,omitempty"`
	Distance  float64 `json:"distance,omitempty"` // AU; informational only
}

// Retrograde reports whether the body is in apparent retrograde motion.
func (p BodyPosition) Retrograde() bool {
	return p.Speed < 0
}
