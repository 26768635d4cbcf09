package curve

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
	"github.com/matzehuels/lidkit/pkg/render"
)

// HTML renders an interactive page with the polar intensity diagram and a
// bar chart of each plane's share of the total intensity.
func HTML(web *photweb.Web, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	planes := Select(web, opts.Planes)
	if len(planes) == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "web has no planes")
	}

	page := components.NewPage()
	page.PageTitle = opts.Title
	page.AddCharts(polarChart(web, planes, opts), contributionChart(web, opts))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html")
	}
	return buf.Bytes(), nil
}

func polarChart(web *photweb.Web, planes []photweb.Plane, o Options) *charts.Scatter {
	r := math.Max(web.MaxIntensity(), 1) * 1.05
	size := px(min(o.Width, o.Height))

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: size, Height: size}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: fmt.Sprintf("planes=%d total=%.4g", web.NPlanes(), web.TotalIntensity())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Min: -r, Max: r, Name: "cd", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -r, Max: r, Name: "cd", NameLocation: "middle", NameGap: 30}),
	)

	for _, p := range planes {
		pts := Polar(p)
		data := make([]opts.ScatterData, len(pts))
		for i, pt := range pts {
			data[i] = opts.ScatterData{Value: []interface{}{pt.X, pt.Y}}
		}
		scatter.AddSeries(planeLabel(p), data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	}
	return scatter
}

func contributionChart(web *photweb.Web, o Options) *charts.Bar {
	total := web.TotalIntensity()
	labels := make([]string, web.NPlanes())
	data := make([]opts.BarData, web.NPlanes())
	for i, p := range web.Planes() {
		labels[i] = formatDeg(p.AngleDeg())
		share := 0.0
		if total != 0 {
			share = 100 * p.Integrate() / total
		}
		data[i] = opts.BarData{Value: round(share, 2)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: px(o.Width), Height: px(o.Height / 2)}),
		charts.WithTitleOpts(opts.Title{Title: "Share of total intensity", Subtitle: "percent per C-plane"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "C (°)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%"}),
	)
	bar.SetXAxis(labels).AddSeries("share", data)
	return bar
}

func px(n int) string { return strconv.Itoa(n) + "px" }

func round(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}

// Render produces a chart in format: svg, png, pdf or html.
func Render(web *photweb.Web, format string, opts Options) ([]byte, error) {
	if format == render.FormatHTML {
		return HTML(web, opts)
	}
	if err := render.ValidateFormat(format, render.FormatSVG, render.FormatPNG, render.FormatPDF, render.FormatHTML); err != nil {
		return nil, err
	}
	return Static(web, format, opts)
}
