package photweb

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/matzehuels/lidkit/pkg/geom"
)

// widthTol absorbs the rounding left by degree/radian conversion when
// deciding whether a plane sits midway between its neighbours.
const widthTol = 1e-12

// Web is an ordered ring of planes.
//
// The web owns its planes: constructors copy the input and accessors return
// copies, so a Web value is never aliased by a caller.
type Web struct {
	planes []Plane
}

// NewWeb builds a web from planes and resolves each plane's width from its
// circular neighbours.
func NewWeb(planes []Plane) *Web {
	w := &Web{planes: make([]Plane, len(planes))}
	for i, p := range planes {
		w.planes[i] = p.Clone()
	}
	w.resolveWidths()
	return w
}

// NPlanes returns the number of planes.
func (w *Web) NPlanes() int { return len(w.planes) }

// IsSphericallySymmetric reports whether a single plane stands for the whole
// distribution.
func (w *Web) IsSphericallySymmetric() bool { return len(w.planes) == 1 }

// Planes returns copies of every plane in order.
func (w *Web) Planes() []Plane {
	out := make([]Plane, len(w.planes))
	for i, p := range w.planes {
		out[i] = p.Clone()
	}
	return out
}

// Index maps any integer onto a valid plane index, wrapping around the
// ring. Negative values count backwards from the last plane. It returns -1
// for an empty web.
func (w *Web) Index(i int) int {
	n := len(w.planes)
	if n == 0 {
		return -1
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Plane returns a copy of the plane at i, wrapping around the ring.
// It panics on an empty web.
func (w *Web) Plane(i int) Plane {
	return w.planes[w.Index(i)].Clone()
}

// Neighbors returns the indices of the planes circularly below and above i.
func (w *Web) Neighbors(i int) (lower, upper int) {
	return w.Index(i - 1), w.Index(i + 1)
}

// Angles returns the primary angle of every plane in radians.
func (w *Web) Angles() []float64 {
	out := make([]float64, len(w.planes))
	for i, p := range w.planes {
		out[i] = p.Angle
	}
	return out
}

// AnglesDeg returns the primary angle of every plane in degrees.
func (w *Web) AnglesDeg() []float64 { return geom.RadsToDegs(w.Angles()) }

// TotalIntensity integrates the distribution over the sphere.
func (w *Web) TotalIntensity() float64 {
	var total float64
	for _, p := range w.planes {
		total += p.Integrate()
	}
	return total
}

// MaxIntensity returns the peak intensity across every plane.
func (w *Web) MaxIntensity() float64 {
	var peak float64
	for _, p := range w.planes {
		for _, v := range p.Intensities {
			peak = math.Max(peak, v)
		}
	}
	return peak
}

func (w *Web) resolveWidths() {
	if len(w.planes) == 1 {
		w.planes[0].width = Symmetric(math.Pi)
		return
	}
	for i := range w.planes {
		lo, hi := w.Neighbors(i)
		dLo := geom.Distance(w.planes[i].Angle, w.planes[lo].Angle)
		dHi := geom.Distance(w.planes[i].Angle, w.planes[hi].Angle)
		if scalar.EqualWithinAbsOrRel(dLo, dHi, widthTol, widthTol) {
			w.planes[i].width = Symmetric(dLo / 2)
		} else {
			w.planes[i].width = Split(dLo/2, dHi/2)
		}
	}
}
