package photweb

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/geom"
)

// Orientation is carried through from the source file and does not affect
// integration.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Units is the unit of a plane's intensities.
type Units int

const (
	Candela Units = iota
)

// String returns the unit symbol.
func (u Units) String() string {
	return "cd"
}

// Width is the angular weight of a plane around its primary angle, split
// into the half-spacing toward each neighbour.
type Width struct {
	Lower float64
	Upper float64
}

// Symmetric returns a width with the same half-spacing on both sides.
func Symmetric(half float64) Width { return Width{Lower: half, Upper: half} }

// Split returns a width with distinct lower and upper half-spacings.
func Split(lower, upper float64) Width { return Width{Lower: lower, Upper: upper} }

// IsSplit reports whether the two half-spacings differ.
func (w Width) IsSplit() bool { return w.Lower != w.Upper }

// Total is the full angular extent covered by the plane.
func (w Width) Total() float64 { return w.Lower + w.Upper }

// Plane is one angular slice of a photometric web.
//
// Angles and Intensities are parallel slices; Angles is in radians and
// strictly increasing. The width is assigned by the enclosing [Web].
type Plane struct {
	Angle       float64
	Orientation Orientation
	Angles      []float64
	Intensities []float64
	Units       Units

	width Width
}

// NewPlane builds a plane at angleDeg from secondary angles in degrees.
func NewPlane(angleDeg float64, anglesDeg, intensities []float64) Plane {
	p := Plane{Intensities: slices.Clone(intensities)}
	p.SetAngleDeg(angleDeg)
	p.SetAnglesDeg(anglesDeg)
	return p
}

// Width returns the width resolved by the enclosing web.
func (p Plane) Width() Width { return p.width }

// SetWidth overrides the plane width. Webs reassign widths on construction.
func (p *Plane) SetWidth(w Width) { p.width = w }

// AngleDeg returns the primary angle in degrees.
func (p Plane) AngleDeg() float64 { return geom.RadToDeg(p.Angle) }

// SetAngleDeg sets the primary angle from degrees.
func (p *Plane) SetAngleDeg(deg float64) { p.Angle = geom.DegToRad(deg) }

// AnglesDeg returns the secondary angles in degrees.
func (p Plane) AnglesDeg() []float64 { return geom.RadsToDegs(p.Angles) }

// SetAnglesDeg sets the secondary angles from degrees.
func (p *Plane) SetAnglesDeg(degs []float64) { p.Angles = geom.DegsToRads(degs) }

// NSamples returns the number of angle/intensity pairs.
func (p Plane) NSamples() int { return len(p.Angles) }

// Clone returns a deep copy of p.
func (p Plane) Clone() Plane {
	p.Angles = slices.Clone(p.Angles)
	p.Intensities = slices.Clone(p.Intensities)
	return p
}

// Validate checks the parallel-slice and ordering invariants.
func (p Plane) Validate() error {
	if len(p.Angles) != len(p.Intensities) {
		return errors.New(errors.ErrCodeLengthMismatch,
			"plane at %g°: %d angles but %d intensities", p.AngleDeg(), len(p.Angles), len(p.Intensities))
	}
	for i := 1; i < len(p.Angles); i++ {
		if p.Angles[i] <= p.Angles[i-1] {
			return errors.New(errors.ErrCodeInvalidAngles,
				"plane at %g°: angles not strictly increasing at sample %d", p.AngleDeg(), i+1)
		}
	}
	return nil
}

// DeltaAngle returns the integration step for sample i: the single adjacent
// gap at either end, the mean of both gaps otherwise. A plane with fewer than
// two samples has no extent and yields 0.
func (p Plane) DeltaAngle(i int) float64 {
	n := len(p.Angles)
	switch {
	case n < 2:
		return 0
	case i == 0:
		return p.Angles[1] - p.Angles[0]
	case i >= n-1:
		return p.Angles[n-1] - p.Angles[n-2]
	default:
		return 0.5 * ((p.Angles[i] - p.Angles[i-1]) + (p.Angles[i+1] - p.Angles[i]))
	}
}

// Integral returns Σ I·sin(γ)·δ over the plane, without the width factor.
func (p Plane) Integral() float64 {
	n := min(len(p.Angles), len(p.Intensities))
	if n == 0 {
		return 0
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = math.Sin(p.Angles[i]) * p.DeltaAngle(i)
	}
	return floats.Dot(p.Intensities[:n], weights)
}

// Integrate returns the plane's contribution to the total intensity.
func (p Plane) Integrate() float64 {
	return p.width.Total() * p.Integral()
}
