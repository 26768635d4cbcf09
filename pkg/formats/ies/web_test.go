package ies

import (
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

func TestWebSymmetryExpansion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		horizontal string
		nH         int
		wantPlanes int
	}{
		{"axial", "0", 1, 1},
		{"quadrant", "0 45 90", 3, 8},
		{"half", "0 90 180", 3, 4},
		{"full", "0 90 180 270", 4, 4},
		{"full closed", "0 90 180 270 360", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "TILT=NONE\n1 -1 1 2 " + strconv.Itoa(tt.nH) + " 1 2 0 0 0\n1 1 0\n0 90\n" + tt.horizontal + "\n"
			for range tt.nH {
				text += "100 50\n"
			}

			doc, err := Parse(text)
			require.NoError(t, err)
			web := doc.Web()
			assert.Equal(t, tt.wantPlanes, web.NPlanes())
			assert.Equal(t, web.NPlanes(), len(web.Angles()))
			assert.Equal(t, tt.wantPlanes == 1, web.IsSphericallySymmetric())
		})
	}
}

func TestWebExpansionNeedsExactAngle(t *testing.T) {
	t.Parallel()

	doc := &Document{
		NVertical: 2, NHorizontal: 3, PhotometricType: TypeC,
		VerticalAngles: []float64{0, 90}, HorizontalAngles: []float64{0, 45, 89.9},
		Candela: []float64{100, 50, 100, 50, 100, 50},
	}
	assert.Equal(t, 3, doc.Web().NPlanes())
}

func TestWebQuadrantAngles(t *testing.T) {
	t.Parallel()

	doc := &Document{
		NVertical: 1, NHorizontal: 3, PhotometricType: TypeC,
		VerticalAngles: []float64{0}, HorizontalAngles: []float64{0, 45, 90},
		Candela: []float64{1, 2, 3},
	}
	web := doc.Web()

	want := []float64{0, 45, 90, 135, 180, 225, 270, 315}
	if diff := cmp.Diff(want, web.AnglesDeg(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("plane angles mismatch (-want +got):\n%s", diff)
	}

	var got []float64
	for _, p := range web.Planes() {
		got = append(got, p.Intensities[0])
	}
	assert.Equal(t, []float64{1, 2, 3, 2, 1, 2, 3, 2}, got)
}

func TestWebTypeBNotExpanded(t *testing.T) {
	t.Parallel()

	doc := &Document{
		NVertical: 1, NHorizontal: 2, PhotometricType: TypeB,
		VerticalAngles: []float64{0}, HorizontalAngles: []float64{0, 90},
		Candela: []float64{1, 2},
	}
	web := doc.Web()
	assert.Equal(t, 2, web.NPlanes())
	assert.Equal(t, photweb.Horizontal, web.Plane(0).Orientation)
}

func TestWebIsotropicTotal(t *testing.T) {
	t.Parallel()

	var vertical, candela []float64
	for a := 0; a <= 180; a++ {
		vertical = append(vertical, float64(a))
		candela = append(candela, 1)
	}
	doc := &Document{
		NVertical: len(vertical), NHorizontal: 1, PhotometricType: TypeC,
		VerticalAngles: vertical, HorizontalAngles: []float64{0}, Candela: candela,
	}
	assert.InEpsilon(t, 4*math.Pi, doc.Web().TotalIntensity(), 1e-4)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := Parse(keywordBlock)
	require.NoError(t, err)

	again, err := Parse(doc.String())
	require.NoError(t, err)

	if diff := cmp.Diff(doc, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatWriteRead(t *testing.T) {
	t.Parallel()

	doc, err := Parse(keywordBlock)
	require.NoError(t, err)
	web := doc.Web()

	path := filepath.Join(t.TempDir(), "out.ies")
	require.NoError(t, Format{}.Write(web, path))

	back, err := Format{}.Read(path)
	require.NoError(t, err)
	assert.Equal(t, web.NPlanes(), back.NPlanes())
	assert.InEpsilon(t, web.TotalIntensity(), back.TotalIntensity(), 1e-9)

	assert.True(t, Format{}.Supports("A.IES"))
	assert.False(t, Format{}.Supports("a.ldt"))
}

func TestFromWebInconsistentAngles(t *testing.T) {
	t.Parallel()

	web := photweb.NewWeb([]photweb.Plane{
		photweb.NewPlane(0, []float64{0, 90}, []float64{1, 1}),
		photweb.NewPlane(180, []float64{0, 45, 90}, []float64{1, 1, 1}),
	})
	_, err := FromWeb(web)
	assert.True(t, errors.Is(err, errors.ErrCodeInconsistentAngles))

	_, err = FromWeb(photweb.NewWeb(nil))
	assert.True(t, errors.Is(err, errors.ErrCodeNoWebs))
}

func TestDecodeOpening(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, l, h float64
		want    LuminousOpening
	}{
		{0, 0, 0, LuminousOpening{Shape: Point}},
		{1, 1, 0, LuminousOpening{Shape: Rectangular, Width: 1, Length: 1}},
		{1, 1, 1, LuminousOpening{Shape: RectangularLuminousSides, Width: 1, Length: 1, Height: 1}},
		{-1, -1, 0, LuminousOpening{Shape: Circular, Diameter: 1}},
		{-1, -2, 0, LuminousOpening{Shape: Ellipse, Width: 1, Length: 2}},
		{-1, -1, 1, LuminousOpening{Shape: VerticalCylinder, Diameter: 1, Height: 1}},
		{-1, -2, 1, LuminousOpening{Shape: VerticalEllipsoidalCylinder, Width: 1, Length: 2, Height: 1}},
		{-1, -1, -1, LuminousOpening{Shape: Sphere, Diameter: 1}},
		{-1, -1, -2, LuminousOpening{Shape: EllipsoidalSpheroid, Width: 1, Length: 1, Height: 2}},
		{-3, -1, -2, LuminousOpening{Shape: EllipsoidalSpheroid, Width: 3, Length: 1, Height: 2}},
		{-1, 1, -1, LuminousOpening{Shape: HorizontalCylinderAlong, Diameter: 1, Length: 1}},
		{-1, 1, -2, LuminousOpening{Shape: HorizontalEllipsoidalCylinderAlong, Width: 1, Length: 1, Height: 2}},
		{1, -1, -1, LuminousOpening{Shape: HorizontalCylinderPerpendicular, Width: 1, Diameter: 1}},
		{1, -1, -2, LuminousOpening{Shape: HorizontalEllipsoidalCylinderPerpendicular, Width: 1, Length: 1, Height: 2}},
		{-1, 0, -1, LuminousOpening{Shape: VerticalCircle, Diameter: 1}},
		{-1, 0, -2, LuminousOpening{Shape: VerticalEllipse, Width: 1, Height: 2}},
	}

	for _, tt := range tests {
		if got := DecodeOpening(tt.w, tt.l, tt.h); got != tt.want {
			t.Errorf("DecodeOpening(%v, %v, %v) = %+v, want %+v", tt.w, tt.l, tt.h, got, tt.want)
		}
	}
}
