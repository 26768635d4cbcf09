// Package render turns photometric webs into pictures.
//
// # Overview
//
// The renderers live in subpackages:
//
//   - [ring]: the plane ring as a Graphviz diagram, one node per plane with
//     its primary angle and resolved width
//   - [curve]: intensity curves per plane as static charts (SVG, PNG, PDF)
//     or an interactive HTML page
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg). The ring renderer uses them for its PDF and PNG output.
//
//	svg, err := ring.RenderSVG(ctx, ring.ToDOT(web, ring.Options{}))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
