package astro

import "math"

// Normalize wraps a longitude in degrees into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Separation returns the angular separation between two longitudes,
// always taking the short way around the circle. Range [0, 180].
func Separation(a, b float64) float64 {
	diff := math.Abs(Normalize(a) - Normalize(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// ForwardArc returns the arc from a to b measured in the direction of
// increasing longitude. Range [0, 360).
func ForwardArc(a, b float64) float64 {
	return Normalize(b - a)
}

// InArc reports whether lon lies in the half-open circular interval
// [from, to) measured in the direction of increasing longitude.
func InArc(lon, from, to float64) bool {
	span := ForwardArc(from, to)
	if span == 0 {
		// Degenerate interval covers the whole circle.
		return true
	}
	return ForwardArc(from, lon) < span
}
