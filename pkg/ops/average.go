// Package ops holds operations over several photometric webs.
package ops

import (
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Average returns the sample-by-sample mean of webs, which are taken to be
// repeated measurements of one luminaire.
//
// Every web must have the same number of planes, and every plane of every
// web must share the secondary angles of the first web's first plane. The
// result keeps the first web's plane angles.
func Average(webs ...*photweb.Web) (*photweb.Web, error) {
	if len(webs) == 0 {
		return nil, errors.New(errors.ErrCodeNoWebs, "no webs to average")
	}

	n := webs[0].NPlanes()
	for i, w := range webs[1:] {
		if w.NPlanes() != n {
			pc := &errors.PlaneCountError{Expected: n, Found: w.NPlanes(), Index: i + 1}
			return nil, errors.Wrap(errors.ErrCodePlaneCountMismatch, pc, "plane counts differ")
		}
	}
	if n == 0 {
		return photweb.NewWeb(nil), nil
	}

	ref := webs[0].Plane(0).Angles
	for _, w := range webs {
		for _, p := range w.Planes() {
			if !floats.Equal(p.Angles, ref) {
				return nil, errors.New(errors.ErrCodeInconsistentAngles, "webs do not share the same plane angles")
			}
		}
	}

	out := webs[0].Planes()
	for _, w := range webs[1:] {
		for i, p := range w.Planes() {
			floats.Add(out[i].Intensities, p.Intensities)
		}
	}
	scale := 1 / float64(len(webs))
	for i := range out {
		floats.Scale(scale, out[i].Intensities)
	}
	return photweb.NewWeb(out), nil
}
