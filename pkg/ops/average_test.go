package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

func ring(intensity float64, planeAngles ...float64) *photweb.Web {
	planes := make([]photweb.Plane, len(planeAngles))
	for i, a := range planeAngles {
		planes[i] = photweb.NewPlane(a, []float64{0, 45, 90}, []float64{intensity, intensity / 2, 0})
	}
	return photweb.NewWeb(planes)
}

func TestAverage(t *testing.T) {
	t.Parallel()

	a := ring(100, 0, 90, 180, 270)
	b := ring(200, 0, 90, 180, 270)
	c := ring(600, 0, 90, 180, 270)

	avg, err := Average(a, b, c)
	require.NoError(t, err)
	require.Equal(t, 4, avg.NPlanes())
	for _, p := range avg.Planes() {
		assert.InDeltaSlice(t, []float64{300, 150, 0}, p.Intensities, 1e-9)
	}
	assert.Equal(t, a.Angles(), avg.Angles())

	// Inputs are left untouched.
	assert.Equal(t, 100.0, a.Plane(0).Intensities[0])
}

func TestAverageSingleWeb(t *testing.T) {
	t.Parallel()

	w := ring(42, 0)
	avg, err := Average(w)
	require.NoError(t, err)
	assert.True(t, avg.IsSphericallySymmetric())
	assert.Equal(t, w.Plane(0).Intensities, avg.Plane(0).Intensities)
}

func TestAverageNoWebs(t *testing.T) {
	t.Parallel()

	_, err := Average()
	assert.True(t, errors.Is(err, errors.ErrCodeNoWebs))
}

func TestAveragePlaneCountMismatch(t *testing.T) {
	t.Parallel()

	_, err := Average(
		ring(1, 0, 180),
		ring(1, 0, 180),
		ring(1, 0, 90, 180, 270),
		ring(1, 0),
	)
	require.True(t, errors.Is(err, errors.ErrCodePlaneCountMismatch), "error: %v", err)

	var pc *errors.PlaneCountError
	require.ErrorAs(t, err, &pc)
	assert.Equal(t, 2, pc.Expected)
	assert.Equal(t, 4, pc.Found)
	assert.Equal(t, 2, pc.Index)
}

func TestAverageInconsistentAngles(t *testing.T) {
	t.Parallel()

	odd := photweb.NewWeb([]photweb.Plane{
		photweb.NewPlane(0, []float64{0, 45, 90}, []float64{1, 1, 1}),
		photweb.NewPlane(180, []float64{0, 30, 90}, []float64{1, 1, 1}),
	})
	_, err := Average(ring(1, 0, 180), odd)
	assert.True(t, errors.Is(err, errors.ErrCodeInconsistentAngles))
}
