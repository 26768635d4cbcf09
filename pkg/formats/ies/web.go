package ies

import (
	"slices"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Web converts the document into a photometric web.
//
// Each horizontal angle becomes one plane over the vertical angles. For
// Type C photometry the stored lateral symmetry is expanded: a last
// horizontal angle of exactly 90° is mirrored to 180°, and a ring ending at
// exactly 180° is mirrored to 360°. A single horizontal angle yields a
// spherically symmetric web.
func (d *Document) Web() *photweb.Web {
	orientation := photweb.Vertical
	if d.PhotometricType != TypeC {
		orientation = photweb.Horizontal
	}

	planes := make([]photweb.Plane, d.NHorizontal)
	for h, angle := range d.HorizontalAngles {
		p := photweb.NewPlane(angle, d.VerticalAngles, d.Block(h))
		p.Orientation = orientation
		planes[h] = p
	}

	if d.PhotometricType == TypeC && len(planes) > 1 {
		last := d.HorizontalAngles[len(d.HorizontalAngles)-1]
		if last == 90 {
			planes = photweb.MirrorFirstQuadrant(planes)
			last = 2*90 - d.HorizontalAngles[0]
		}
		if last == 180 {
			planes = photweb.MirrorFirstHemisphere(planes)
		}
	}
	return photweb.NewWeb(planes)
}

// FromWeb builds a Type C LM-63-2002 document holding every plane of web
// with no lateral symmetry. Every plane must share the same vertical
// angles.
func FromWeb(web *photweb.Web) (*Document, error) {
	planes := web.Planes()
	if len(planes) == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "web has no planes")
	}

	vertical := planes[0].AnglesDeg()
	d := &Document{
		Standard:        LM63_2002,
		Tilt:            Tilt{Mode: TiltNone},
		NumLamps:        1,
		LumensPerLamp:   -1,
		Multiplier:      1,
		NVertical:       len(vertical),
		NHorizontal:     len(planes),
		PhotometricType: TypeC,
		Units:           Meters,
		BallastFactor:   1,
		FutureUse:       1,
		VerticalAngles:  roundAll(vertical),
	}
	for _, p := range planes {
		if !slices.Equal(roundAll(p.AnglesDeg()), d.VerticalAngles) {
			return nil, errors.New(errors.ErrCodeInconsistentAngles,
				"plane at %g° has different vertical angles than the first plane", p.AngleDeg())
		}
		d.HorizontalAngles = append(d.HorizontalAngles, round(p.AngleDeg()))
		d.Candela = append(d.Candela, p.Intensities...)
	}
	if web.IsSphericallySymmetric() {
		d.HorizontalAngles = []float64{0}
	}
	return d, nil
}
