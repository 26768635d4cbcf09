package photweb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lidkit/pkg/errors"
)

// degRange returns lo, lo+step, ..., hi inclusive.
func degRange(lo, hi, step float64) []float64 {
	var out []float64
	for a := lo; a <= hi+1e-9; a += step {
		out = append(out, a)
	}
	return out
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestPlaneIntegral(t *testing.T) {
	t.Parallel()

	// ∫ sin γ dγ over [0, π] is 2.
	angles := degRange(0, 180, 1)
	p := NewPlane(0, angles, constant(len(angles), 1))
	p.SetWidth(Symmetric(0.5))

	assert.InDelta(t, 2.0, p.Integral(), 2e-4)
	assert.InDelta(t, 2.0, p.Integrate(), 2e-4)
}

func TestPlaneDeltaAngle(t *testing.T) {
	t.Parallel()

	p := NewPlane(0, []float64{0, 10, 30, 60}, []float64{1, 1, 1, 1})
	rad := math.Pi / 180

	tests := []struct {
		i    int
		want float64
	}{
		{0, 10 * rad},
		{1, 15 * rad},
		{2, 25 * rad},
		{3, 30 * rad},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, p.DeltaAngle(tt.i), 1e-12, "DeltaAngle(%d)", tt.i)
	}

	single := NewPlane(0, []float64{0}, []float64{5})
	assert.Zero(t, single.DeltaAngle(0))
	assert.Zero(t, single.Integral())
}

func TestPlaneValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		plane    Plane
		wantCode errors.Code
	}{
		{"valid", NewPlane(0, []float64{0, 45, 90}, []float64{3, 2, 1}), ""},
		{"length mismatch", NewPlane(0, []float64{0, 45, 90}, []float64{3, 2}), errors.ErrCodeLengthMismatch},
		{"repeated angle", NewPlane(0, []float64{0, 45, 45}, []float64{3, 2, 1}), errors.ErrCodeInvalidAngles},
		{"decreasing", NewPlane(0, []float64{0, 90, 45}, []float64{3, 2, 1}), errors.ErrCodeInvalidAngles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plane.Validate()
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestPlaneCloneIsDeep(t *testing.T) {
	t.Parallel()

	p := NewPlane(90, []float64{0, 90}, []float64{1, 2})
	c := p.Clone()
	c.Intensities[0] = 99
	c.Angles[1] = 0

	require.Equal(t, 1.0, p.Intensities[0])
	assert.InDelta(t, math.Pi/2, p.Angles[1], 1e-12)
	assert.InDelta(t, 90, p.AngleDeg(), 1e-9)
}
