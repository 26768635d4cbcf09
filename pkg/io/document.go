package io

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/geom"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Document is the serialized form of a web. Angles are in degrees; each
// plane also carries its angles in radians so a document written by lidkit
// reloads into exactly the web it came from.
type Document struct {
	ID             string    `json:"id" yaml:"id"`
	Source         string    `json:"source,omitempty" yaml:"source,omitempty"`
	Format         string    `json:"format,omitempty" yaml:"format,omitempty"`
	Created        time.Time `json:"created" yaml:"created"`
	Spherical      bool      `json:"spherical" yaml:"spherical"`
	TotalIntensity float64   `json:"total_intensity" yaml:"total_intensity"`
	MaxIntensity   float64   `json:"max_intensity" yaml:"max_intensity"`
	Planes         []Plane   `json:"planes" yaml:"planes"`
}

// Plane is one serialized plane.
//
// AngleRad and AnglesRad are used only while they agree with the degree
// fields, so editing the degrees by hand still takes effect.
type Plane struct {
	Angle       float64   `json:"angle" yaml:"angle"`
	AngleRad    float64   `json:"angle_rad,omitempty" yaml:"angle_rad,omitempty"`
	Orientation string    `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Width       []float64 `json:"width,omitempty" yaml:"width,flow,omitempty"`
	Angles      []float64 `json:"angles" yaml:"angles,flow"`
	AnglesRad   []float64 `json:"angles_rad,omitempty" yaml:"angles_rad,flow,omitempty"`
	Intensities []float64 `json:"intensities" yaml:"intensities,flow"`
}

// radTol is how far, in degrees, a stored radian value may drift from its
// degree field and still be trusted.
const radTol = 1e-9

func radians(deg, rad float64) float64 {
	if math.Abs(geom.RadToDeg(rad)-deg) <= radTol {
		return rad
	}
	return geom.DegToRad(deg)
}

func (sp Plane) plane() photweb.Plane {
	p := photweb.Plane{
		Angle:       radians(sp.Angle, sp.AngleRad),
		Angles:      make([]float64, len(sp.Angles)),
		Intensities: slices.Clone(sp.Intensities),
	}
	exact := len(sp.AnglesRad) == len(sp.Angles)
	for i, deg := range sp.Angles {
		if exact {
			p.Angles[i] = radians(deg, sp.AnglesRad[i])
		} else {
			p.Angles[i] = geom.DegToRad(deg)
		}
	}
	if sp.Orientation == photweb.Horizontal.String() {
		p.Orientation = photweb.Horizontal
	}
	return p
}

// Meta describes where a web came from.
type Meta struct {
	Source string // file path or upload name
	Format string // format name
}

// NewDocument snapshots web with a fresh ID.
func NewDocument(web *photweb.Web, meta Meta) *Document {
	d := &Document{
		ID:             uuid.NewString(),
		Source:         meta.Source,
		Format:         meta.Format,
		Created:        time.Now().UTC().Truncate(time.Second),
		Spherical:      web.IsSphericallySymmetric(),
		TotalIntensity: web.TotalIntensity(),
		MaxIntensity:   web.MaxIntensity(),
	}
	for _, p := range web.Planes() {
		w := p.Width()
		d.Planes = append(d.Planes, Plane{
			Angle:       p.AngleDeg(),
			AngleRad:    p.Angle,
			Orientation: p.Orientation.String(),
			Width:       []float64{geom.RadToDeg(w.Lower), geom.RadToDeg(w.Upper)},
			Angles:      p.AnglesDeg(),
			AnglesRad:   p.Angles,
			Intensities: p.Intensities,
		})
	}
	return d
}

// Web rebuilds the web. Widths and totals in the document are derived
// values and are recomputed rather than trusted.
func (d *Document) Web() (*photweb.Web, error) {
	planes := make([]photweb.Plane, len(d.Planes))
	for i, sp := range d.Planes {
		p := sp.plane()
		if err := p.Validate(); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "plane %d", i)
		}
		planes[i] = p
	}
	return photweb.NewWeb(planes), nil
}
