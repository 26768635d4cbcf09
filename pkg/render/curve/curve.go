package curve

import (
	"math"
	"slices"

	"github.com/matzehuels/lidkit/pkg/geom"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Default chart size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// DefaultPlanes are the C-angles plotted when [Options.Planes] is empty.
var DefaultPlanes = []float64{0, 90, 180, 270}

// Options configures chart rendering.
type Options struct {
	// Title heads the chart. Empty means "Luminous intensity".
	Title string
	// Planes lists the C-angles in degrees to plot. Each request picks the
	// nearest plane of the web; duplicates collapse.
	Planes []float64
	// Width and Height are in pixels. Zero means the defaults.
	Width, Height int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Luminous intensity"
	}
	if len(o.Planes) == 0 {
		o.Planes = DefaultPlanes
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Select returns the planes of web nearest to each requested C-angle, in
// request order and without repeats.
func Select(web *photweb.Web, anglesDeg []float64) []photweb.Plane {
	if web.NPlanes() == 0 {
		return nil
	}
	var picked []int
	for _, deg := range anglesDeg {
		i := nearest(web.Angles(), geom.DegToRad(deg))
		if !slices.Contains(picked, i) {
			picked = append(picked, i)
		}
	}
	out := make([]photweb.Plane, len(picked))
	for k, i := range picked {
		out[k] = web.Plane(i)
	}
	return out
}

func nearest(angles []float64, target float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, a := range angles {
		if d := geom.Distance(a, target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Point is one sample of a polar intensity curve in chart coordinates:
// nadir points down, planes between 90° and 270° open to the left.
type Point struct {
	X, Y float64
}

// Polar converts a plane to chart coordinates.
func Polar(p photweb.Plane) []Point {
	side := 1.0
	if c := geom.Normalize(p.Angle); c > math.Pi/2 && c < 3*math.Pi/2 {
		side = -1
	}
	n := min(len(p.Angles), len(p.Intensities))
	pts := make([]Point, n)
	for i := range n {
		g, v := p.Angles[i], p.Intensities[i]
		pts[i] = Point{X: side * v * math.Sin(g), Y: -v * math.Cos(g)}
	}
	return pts
}

func planeLabel(p photweb.Plane) string {
	return "C " + formatDeg(p.AngleDeg()) + "°"
}
