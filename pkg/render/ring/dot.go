package ring

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/geom"
	"github.com/matzehuels/lidkit/pkg/photweb"
	"github.com/matzehuels/lidkit/pkg/render"
)

// Options configures ring diagram rendering.
type Options struct {
	// Detailed adds the resolved width, sample count and peak intensity to
	// each node label. When false, only the primary angle is shown.
	Detailed bool
}

// ToDOT converts a web's plane ring to Graphviz DOT. Each plane is a node;
// each plane points at its upper neighbour, closing the ring.
//
// Planes with a split width (unequal spacing to each neighbour) are drawn
// dashed.
func ToDOT(web *photweb.Web, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i, p := range web.Planes() {
		attrs := fmtAttrs(p, fmtLabel(p, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	if web.NPlanes() > 1 {
		for i := range web.NPlanes() {
			_, upper := web.Neighbors(i)
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(i), nodeID(upper))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "p" + strconv.Itoa(i) }

func fmtLabel(p photweb.Plane, detailed bool) string {
	label := fmt.Sprintf("C %s°", formatDeg(p.Angle))
	if !detailed {
		return label
	}

	w := p.Width()
	parts := []string{
		fmt.Sprintf("width: -%s° / +%s°", formatDeg(w.Lower), formatDeg(w.Upper)),
		fmt.Sprintf("samples: %d", p.NSamples()),
		fmt.Sprintf("peak: %s cd", strconv.FormatFloat(peak(p.Intensities), 'g', 6, 64)),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p photweb.Plane, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if p.Width().IsSplit() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// formatDeg prints rad in degrees, rounded to hide float noise from the
// radian round trip.
func formatDeg(rad float64) string {
	deg := math.Round(geom.RadToDeg(rad)*1e6) / 1e6
	return strconv.FormatFloat(deg, 'f', -1, 64)
}

func peak(values []float64) float64 {
	var m float64
	for _, v := range values {
		m = max(m, v)
	}
	return m
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg tag with one whose
// width and height match the viewBox, so browsers scale it predictably.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Render produces the ring diagram in format: dot, svg, pdf or png.
// PDF and PNG go through [render.ToPDF] and [render.ToPNG].
func Render(ctx context.Context, web *photweb.Web, format string, opts Options) ([]byte, error) {
	if err := render.ValidateFormat(format, render.FormatDOT, render.FormatSVG, render.FormatPDF, render.FormatPNG); err != nil {
		return nil, err
	}
	if web.NPlanes() == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "web has no planes")
	}

	dot := ToDOT(web, opts)
	if format == render.FormatDOT {
		return []byte(dot), nil
	}

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case render.FormatPDF:
		return render.ToPDF(svg)
	case render.FormatPNG:
		return render.ToPNG(svg, 2.0)
	}
	return svg, nil
}
