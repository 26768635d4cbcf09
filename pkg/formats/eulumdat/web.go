package eulumdat

import (
	"math"
	"slices"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Web converts the document into a photometric web.
//
// The stored C-planes become planes over the G-angles, and the remaining
// planes are rebuilt from the symmetry indicator: C0-C180 is mirrored about
// 180°, C0-C180-C90-C270 about 90° and then 180°, and C90-C270 about both
// 90° and 270°. Symmetry about the vertical axis gives a single plane and
// a spherically symmetric web.
func (d *Document) Web() *photweb.Web {
	lo, hi := d.wedge()
	hi = min(hi, len(d.CAngles), lo+len(d.Intensities)/max(d.NGAngles, 1))

	planes := make([]photweb.Plane, 0, max(hi-lo, 0))
	for i := lo; i < hi; i++ {
		planes = append(planes, photweb.NewPlane(d.CAngles[i], d.GAngles, d.Block(i-lo)))
	}

	switch d.Symmetry {
	case C0C180:
		planes = photweb.MirrorFirstHemisphere(planes)
	case C0C180C90C270:
		planes = photweb.MirrorFirstHemisphere(photweb.MirrorFirstQuadrant(planes))
	case C90C270:
		planes = photweb.MirrorSecondAndThirdQuadrants(planes)
	}
	return photweb.NewWeb(planes)
}

// FromWeb builds a document storing every plane of web. A spherically
// symmetric web is written with symmetry about the vertical axis; any
// other web is written without symmetry. Every plane must share the same
// G-angles.
func FromWeb(web *photweb.Web) (*Document, error) {
	planes := web.Planes()
	if len(planes) == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "web has no planes")
	}

	g := roundAll(planes[0].AnglesDeg())
	d := &Document{
		Header:           "lidkit",
		Type:             PointSourceOther,
		Symmetry:         NoSymmetry,
		NCPlanes:         len(planes),
		NGAngles:         len(g),
		GAngleDistance:   spacing(g),
		ConversionFactor: 1,
		Lamps:            []LampSet{{Count: 1}},
		DirectRatios:     make([]float64, directRatios),
		GAngles:          g,
	}
	if web.IsSphericallySymmetric() {
		d.Type, d.Symmetry = PointSourceVertical, AboutVerticalAxis
	}

	for _, p := range planes {
		if !slices.Equal(roundAll(p.AnglesDeg()), g) {
			return nil, errors.New(errors.ErrCodeInconsistentAngles,
				"C-plane at %g° has different G-angles than the first plane", p.AngleDeg())
		}
		d.CAngles = append(d.CAngles, round(p.AngleDeg()))
		d.Intensities = append(d.Intensities, p.Intensities...)
	}
	d.CPlaneDistance = spacing(d.CAngles)
	return d, nil
}

// spacing returns the common step of vs, or 0 when the steps differ.
func spacing(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	step := vs[1] - vs[0]
	for i := 2; i < len(vs); i++ {
		if math.Abs(vs[i]-vs[i-1]-step) > 1e-9 {
			return 0
		}
	}
	return step
}

// round trims conversion noise from angles that went through radians.
func round(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round(v)
	}
	return out
}
