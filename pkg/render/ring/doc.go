// Package ring renders the plane ring of a photometric web as a Graphviz
// diagram.
//
// Each plane becomes a box labelled with its primary C-angle; edges run from
// every plane to its upper neighbour, so the wrap-around from the last plane
// back to the first is visible. Detailed labels add the resolved lower and
// upper half-widths, which makes uneven plane spacing easy to spot.
//
//	dot := ring.ToDOT(web, ring.Options{Detailed: true})
//	svg, err := ring.RenderSVG(ctx, dot)
//
// [Render] picks the output by name (dot, svg, pdf, png). PDF and PNG need
// rsvg-convert on PATH.
//
// This package uses [github.com/goccy/go-graphviz] for in-process layout, so
// no Graphviz installation is needed for DOT or SVG output.
package ring
