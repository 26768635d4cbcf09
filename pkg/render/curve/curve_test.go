package curve

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

func ringWeb(step float64) *photweb.Web {
	var planes []photweb.Plane
	for a := 0.0; a < 360; a += step {
		planes = append(planes, photweb.NewPlane(a, []float64{0, 45, 90, 135, 180}, []float64{100, 80, 40, 10, 0}))
	}
	return photweb.NewWeb(planes)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	web := ringWeb(30)

	tests := []struct {
		name string
		req  []float64
		want []float64
	}{
		{"exact", []float64{0, 90}, []float64{0, 90}},
		{"nearest", []float64{95, 359}, []float64{90, 0}},
		{"duplicates collapse", []float64{0, 5, 360}, []float64{0}},
		{"none", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []float64
			for _, p := range Select(web, tt.req) {
				got = append(got, p.AngleDeg())
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Select() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Nil(t, Select(photweb.NewWeb(nil), []float64{0}))
}

func TestPolar(t *testing.T) {
	t.Parallel()

	right := photweb.NewPlane(0, []float64{0, 90, 180}, []float64{100, 50, 20})
	left := photweb.NewPlane(180, []float64{0, 90, 180}, []float64{100, 50, 20})

	want := []Point{{0, -100}, {50, 0}, {0, 20}}
	if diff := cmp.Diff(want, Polar(right), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Polar(C0) mismatch (-want +got):\n%s", diff)
	}

	got := Polar(left)
	assert.InDelta(t, -50, got[1].X, 1e-9)
	assert.InDelta(t, -100, got[0].Y, 1e-9)
}

func TestStaticFormats(t *testing.T) {
	t.Parallel()

	web := ringWeb(90)

	svg, err := Static(web, "svg", Options{})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "C 90°")

	png, err := Static(web, "png", Options{Width: 200, Height: 200})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "png signature")

	pdf, err := Static(web, "pdf", Options{Width: 200, Height: 200})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "pdf signature")
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	_, err := Render(ringWeb(90), "gif", Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	_, err = Render(photweb.NewWeb(nil), "svg", Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeNoWebs))

	_, err = Render(photweb.NewWeb(nil), "html", Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeNoWebs))
}

func TestHTML(t *testing.T) {
	t.Parallel()

	out, err := Render(ringWeb(90), "html", Options{Title: "Downlight"})
	require.NoError(t, err)

	html := string(out)
	for _, want := range []string{"<html", "Downlight", "C 0°", "Share of total intensity"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() output missing %q", want)
		}
	}
}

func TestGenerateColors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, generateColors(0))
	colors := generateColors(4)
	require.Len(t, colors, 4)
	assert.NotEqual(t, colors[0], colors[2])
}

func TestRound(t *testing.T) {
	if got := round(math.Pi, 2); got != 3.14 {
		t.Errorf("round(pi, 2) = %v, want 3.14", got)
	}
}
