// Package curve draws luminous intensity curves of a photometric web.
//
// A polar intensity diagram puts the nadir (γ = 0°) at the bottom and
// the zenith at the top. Planes whose C-angle lies between 90° and 270° open
// to the left, so a C0/C180 pair reads as one symmetric curve.
//
// [Static] renders SVG, PNG or PDF with gonum/plot; [HTML] renders an
// interactive go-echarts page that adds a per-plane bar chart of each
// plane's share of the total intensity. [Render] dispatches by format name.
//
//	svg, err := curve.Render(web, "svg", curve.Options{Planes: []float64{0, 90}})
package curve
