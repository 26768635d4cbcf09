package eulumdat

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// tenDegreeDoc returns a document with 36 C-planes every 10° whose stored
// planes have an intensity equal to their own C-angle.
func tenDegreeDoc(sym Symmetry) *Document {
	d := &Document{Symmetry: sym, NCPlanes: 36, NGAngles: 2, GAngles: []float64{0, 90}}
	for c := 0; c < 360; c += 10 {
		d.CAngles = append(d.CAngles, float64(c))
	}
	lo, hi := d.wedge()
	for _, c := range d.CAngles[lo:hi] {
		d.Intensities = append(d.Intensities, c, c)
	}
	return d
}

func intensityByAngle(w *photweb.Web) map[int]float64 {
	out := make(map[int]float64, w.NPlanes())
	for _, p := range w.Planes() {
		out[int(p.AngleDeg()+0.5)] = p.Intensities[0]
	}
	return out
}

func fullRing() []float64 {
	var out []float64
	for c := 0; c < 360; c += 10 {
		out = append(out, float64(c))
	}
	return out
}

func TestWebSymmetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symmetry Symmetry
		stored   int
		want     func(a float64) float64
	}{
		{
			symmetry: C0C180,
			stored:   19,
			want: func(a float64) float64 {
				if a > 180 {
					return 360 - a
				}
				return a
			},
		},
		{
			symmetry: C90C270,
			stored:   19,
			want: func(a float64) float64 {
				switch {
				case a < 90:
					return 180 - a
				case a > 270:
					return 540 - a
				}
				return a
			},
		},
		{
			symmetry: C0C180C90C270,
			stored:   10,
			want: func(a float64) float64 {
				if a > 180 {
					a = 360 - a
				}
				if a > 90 {
					a = 180 - a
				}
				return a
			},
		},
		{
			symmetry: NoSymmetry,
			stored:   36,
			want:     func(a float64) float64 { return a },
		},
	}

	for _, tt := range tests {
		t.Run(tt.symmetry.String(), func(t *testing.T) {
			d := tenDegreeDoc(tt.symmetry)
			require.Equal(t, tt.stored, d.StoredPlanes())

			web := d.Web()
			require.Equal(t, 36, web.NPlanes())
			if diff := cmp.Diff(fullRing(), web.AnglesDeg(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("plane angles mismatch (-want +got):\n%s", diff)
			}

			got := intensityByAngle(web)
			for _, a := range fullRing() {
				if v := got[int(a)]; v != tt.want(a) {
					t.Errorf("intensity at C%g = %g, want %g", a, v, tt.want(a))
				}
			}
		})
	}
}

func TestWebAboutVerticalAxis(t *testing.T) {
	t.Parallel()

	d := &Document{
		Symmetry: AboutVerticalAxis, NCPlanes: 1, NGAngles: 3,
		CAngles: []float64{0}, GAngles: []float64{0, 90, 180},
		Intensities: []float64{1, 1, 1},
	}
	web := d.Web()
	require.Equal(t, 1, web.NPlanes())
	assert.True(t, web.IsSphericallySymmetric())
	assert.Equal(t, 0.0, web.Plane(0).Angle)
}

func TestWebFromParsedFile(t *testing.T) {
	t.Parallel()

	doc, err := Parse(fixture(nil))
	require.NoError(t, err)

	web := doc.Web()
	require.Equal(t, 4, web.NPlanes())
	got := intensityByAngle(web)
	assert.Equal(t, 500.0, got[180])
	assert.Equal(t, 480.0, got[270])
}

func TestFromWeb(t *testing.T) {
	t.Parallel()

	spherical := photweb.NewWeb([]photweb.Plane{photweb.NewPlane(0, []float64{0, 90, 180}, []float64{1, 1, 1})})
	d, err := FromWeb(spherical)
	require.NoError(t, err)
	assert.Equal(t, AboutVerticalAxis, d.Symmetry)
	assert.Equal(t, 1, d.StoredPlanes())
	assert.Equal(t, 90.0, d.GAngleDistance)

	ring := tenDegreeDoc(C0C180).Web()
	d, err = FromWeb(ring)
	require.NoError(t, err)
	assert.Equal(t, NoSymmetry, d.Symmetry)
	assert.Equal(t, 36, d.NCPlanes)
	assert.Equal(t, 10.0, d.CPlaneDistance)
	assert.Len(t, d.Intensities, 72)

	uneven := photweb.NewWeb([]photweb.Plane{
		photweb.NewPlane(0, []float64{0, 90}, []float64{1, 1}),
		photweb.NewPlane(180, []float64{0, 60, 90}, []float64{1, 1, 1}),
	})
	_, err = FromWeb(uneven)
	assert.True(t, errors.Is(err, errors.ErrCodeInconsistentAngles))

	_, err = FromWeb(photweb.NewWeb(nil))
	assert.True(t, errors.Is(err, errors.ErrCodeNoWebs))
}

func TestFormatWriteRead(t *testing.T) {
	t.Parallel()

	web := tenDegreeDoc(C90C270).Web()
	path := filepath.Join(t.TempDir(), "ring.ldt")
	require.NoError(t, Format{}.Write(web, path))

	back, err := Format{}.Read(path)
	require.NoError(t, err)
	assert.Equal(t, web.NPlanes(), back.NPlanes())
	assert.InEpsilon(t, web.TotalIntensity(), back.TotalIntensity(), 1e-9)

	assert.True(t, Format{}.Supports("ring.LDT"))
	assert.True(t, Format{}.Supports("ring.eul"))
	assert.False(t, Format{}.Supports("ring.ies"))
	assert.Equal(t, []string{".ldt", ".eul"}, Format{}.Extensions())
}
