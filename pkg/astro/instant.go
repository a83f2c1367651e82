package astro

import "time"

// Instant is a point in civil time paired with the observer's location.
// It is a value type: construct once, never mutate.
type Instant struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NewInstant builds an Instant from a time and a geographic location.
func NewInstant(t time.Time, lat, lon float64) Instant {
	return Instant{Time: t, Latitude: lat, Longitude: lon}
}
