package pipeline

import (
	"math"
	"slices"

	"github.com/matzehuels/lidkit/pkg/geom"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Summary describes a web for listings and the info command.
type Summary struct {
	Source         string  `json:"source"`
	Format         string  `json:"format"`
	Planes         int     `json:"planes"`
	Samples        int     `json:"samples"`
	Spherical      bool    `json:"spherical"`
	Uniform        bool    `json:"uniform_spacing"`
	MinAngle       float64 `json:"min_angle"`
	MaxAngle       float64 `json:"max_angle"`
	TotalIntensity float64 `json:"total_intensity"`
	MaxIntensity   float64 `json:"max_intensity"`
}

// Summarize reports the shape and totals of a loaded web.
func Summarize(l *Loaded) Summary {
	s := Summary{Source: l.Source, Format: l.Format}
	web := l.Web
	if web == nil || web.NPlanes() == 0 {
		return s
	}

	s.Planes = web.NPlanes()
	s.Spherical = web.IsSphericallySymmetric()
	s.TotalIntensity = web.TotalIntensity()
	s.MaxIntensity = web.MaxIntensity()

	angles := web.AnglesDeg()
	s.MinAngle, s.MaxAngle = slices.Min(angles), slices.Max(angles)

	s.Uniform = true
	first := web.Plane(0).Width().Total()
	for _, p := range web.Planes() {
		s.Samples = max(s.Samples, p.NSamples())
		w := p.Width()
		if w.IsSplit() || math.Abs(w.Total()-first) > 1e-12 {
			s.Uniform = false
		}
	}
	return s
}

// Widths returns each plane's lower and upper half-width in degrees.
func Widths(web *photweb.Web) [][2]float64 {
	out := make([][2]float64, web.NPlanes())
	for i, p := range web.Planes() {
		w := p.Width()
		out[i] = [2]float64{geom.RadToDeg(w.Lower), geom.RadToDeg(w.Upper)}
	}
	return out
}
