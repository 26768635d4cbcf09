// Package geom holds the angle helpers shared by the photometric model and
// the format parsers.
package geom

import "math"

// FullCircle is 2π.
const FullCircle = 2 * math.Pi

// DegToRad converts an angle in degrees into radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts an angle in radians into degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// DegsToRads converts every element of degs. The input is not modified.
func DegsToRads(degs []float64) []float64 {
	out := make([]float64, len(degs))
	for i, d := range degs {
		out[i] = DegToRad(d)
	}
	return out
}

// RadsToDegs converts every element of rads. The input is not modified.
func RadsToDegs(rads []float64) []float64 {
	out := make([]float64, len(rads))
	for i, r := range rads {
		out[i] = RadToDeg(r)
	}
	return out
}

// Normalize maps an angle in radians onto [0, 2π).
func Normalize(rad float64) float64 {
	r := math.Mod(rad, FullCircle)
	if r < 0 {
		r += FullCircle
	}
	return r
}

// Distance returns the shortest angular distance between a and b in
// radians. The result is symmetric and lies in [0, π], so 350° and 10° are
// 20° apart.
func Distance(a, b float64) float64 {
	d := Normalize(a - b)
	if d > math.Pi {
		d = FullCircle - d
	}
	return d
}
