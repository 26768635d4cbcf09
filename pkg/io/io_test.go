package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

func sampleWeb() *photweb.Web {
	var planes []photweb.Plane
	for _, a := range []float64{0, 90, 180, 270} {
		planes = append(planes, photweb.NewPlane(a, []float64{0, 30, 60, 90}, []float64{100, 90, 50, 0}))
	}
	return photweb.NewWeb(planes)
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	d := NewDocument(sampleWeb(), Meta{Source: "a.ies", Format: "ies"})
	_, err := uuid.Parse(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.ies", d.Source)
	assert.False(t, d.Spherical)
	require.Len(t, d.Planes, 4)
	assert.InDeltaSlice(t, []float64{45, 45}, d.Planes[1].Width, 1e-9)
	assert.InDelta(t, 90.0, d.Planes[1].Angle, 1e-9)
	assert.Equal(t, 100.0, d.MaxIntensity)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, enc := range []Encoding{JSON, YAML} {
		t.Run(string(enc), func(t *testing.T) {
			web := sampleWeb()
			var buf bytes.Buffer
			require.NoError(t, Write(NewDocument(web, Meta{}), enc, &buf))

			d, err := Read(&buf, enc)
			require.NoError(t, err)
			back, err := d.Web()
			require.NoError(t, err)

			if diff := cmp.Diff(web.AnglesDeg(), back.AnglesDeg(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("plane angles mismatch (-want +got):\n%s", diff)
			}
			assert.InEpsilon(t, web.TotalIntensity(), back.TotalIntensity(), 1e-9)
		})
	}
}

// fineWeb uses angles whose degree form does not convert back to the same
// radians.
func fineWeb(peak float64) *photweb.Web {
	gammas := []float64{0, 1.5, 52.5, 105, 180}
	var planes []photweb.Plane
	for _, c := range []float64{0, 52.5, 105, 210, 287.5, 332.5} {
		planes = append(planes, photweb.NewPlane(c, gammas, []float64{peak, peak, peak / 2, peak / 4, 0}))
	}
	return photweb.NewWeb(planes)
}

func TestRoundTripIsExact(t *testing.T) {
	t.Parallel()

	for _, enc := range []Encoding{JSON, YAML} {
		t.Run(string(enc), func(t *testing.T) {
			web := fineWeb(100)
			var buf bytes.Buffer
			require.NoError(t, Write(NewDocument(web, Meta{}), enc, &buf))

			d, err := Read(&buf, enc)
			require.NoError(t, err)
			back, err := d.Web()
			require.NoError(t, err)

			if diff := cmp.Diff(web.Planes(), back.Planes(), cmp.AllowUnexported(photweb.Plane{})); diff != "" {
				t.Errorf("planes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditedDegreesWin(t *testing.T) {
	t.Parallel()

	d := NewDocument(fineWeb(100), Meta{})
	d.Planes[1].Angle = 45
	d.Planes[1].Angles[1] = 2

	web, err := d.Web()
	require.NoError(t, err)
	assert.InDelta(t, 45.0, web.Plane(1).AngleDeg(), 1e-9)
	assert.InDelta(t, 2.0, web.Plane(1).AnglesDeg()[1], 1e-9)
	assert.Equal(t, fineWeb(100).Plane(1).Angles[2], web.Plane(1).Angles[2])
}

func TestExportImport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"web.json", "web.yaml", "web.YML"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Export(sampleWeb(), Meta{Source: "x"}, path))
		back, err := Import(path)
		require.NoError(t, err, name)
		assert.Equal(t, 4, back.NPlanes())
	}

	err := Export(sampleWeb(), Meta{}, filepath.Join(dir, "web.txt"))
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedExtension))
}

func TestImportInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"planes": [{"angle": 0, "angles": [0, 90], "intensities": [1]}]}`), 0o644))
	_, err := Import(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeLengthMismatch), "error: %v", err)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("planes: [unterminated"), 0o644))
	_, err = Import(garbage)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "error: %v", err)

	_, err = Import(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeIO))
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	e, err := ParseEncoding("YAML")
	require.NoError(t, err)
	assert.Equal(t, YAML, e)

	_, err = ParseEncoding("xml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}
