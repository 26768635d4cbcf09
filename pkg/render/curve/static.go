package curve

import (
	"bytes"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
	"github.com/matzehuels/lidkit/pkg/render"
)

// pixelsPerInch maps chart pixels onto vg lengths.
const pixelsPerInch = 96

// Static renders the selected planes as a polar intensity diagram in
// format: svg, png or pdf.
func Static(web *photweb.Web, format string, opts Options) ([]byte, error) {
	if err := render.ValidateFormat(format, render.FormatSVG, render.FormatPNG, render.FormatPDF); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	p, err := newPlot(web, opts)
	if err != nil {
		return nil, err
	}

	w := vg.Length(opts.Width) * vg.Inch / pixelsPerInch
	h := vg.Length(opts.Height) * vg.Inch / pixelsPerInch
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "prepare %s canvas", format)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s chart", format)
	}
	return buf.Bytes(), nil
}

func newPlot(web *photweb.Web, opts Options) (*plot.Plot, error) {
	planes := Select(web, opts.Planes)
	if len(planes) == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "web has no planes")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "cd"
	p.Y.Label.Text = "cd"
	p.Add(plotter.NewGrid())

	colors := generateColors(len(planes))
	for i, pl := range planes {
		pts := Polar(pl)
		xys := make(plotter.XYs, len(pts))
		for k, pt := range pts {
			xys[k] = plotter.XY{X: pt.X, Y: pt.Y}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "plane %s", planeLabel(pl))
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(planeLabel(pl), line)
	}

	// Square axes so the curve shape is not distorted.
	r := math.Max(web.MaxIntensity(), 1) * 1.05
	p.X.Min, p.X.Max = -r, r
	p.Y.Min, p.Y.Max = -r, r

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// generateColors spreads n hues evenly around the colour wheel.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := range n {
		r, g, b := hslToRGB(float64(i)/float64(n), 0.7, 0.45)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	rf := hueToRGB(p, q, h+1.0/3.0)
	gf := hueToRGB(p, q, h)
	bf := hueToRGB(p, q, h-1.0/3.0)
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func formatDeg(deg float64) string {
	return strconv.FormatFloat(math.Round(deg*1e6)/1e6, 'f', -1, 64)
}
