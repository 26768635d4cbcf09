package photweb

import "math"

// reflected returns copies of src in reverse order, each moved to the
// mirror image of its angle about the axis at about (radians).
func reflected(src []Plane, about float64) []Plane {
	out := make([]Plane, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		p := src[i].Clone()
		p.Angle = 2*about - src[i].Angle
		out = append(out, p)
	}
	return out
}

func cloneAll(planes []Plane) []Plane {
	out := make([]Plane, len(planes), 2*len(planes)+1)
	for i, p := range planes {
		out[i] = p.Clone()
	}
	return out
}

// MirrorFirstQuadrant extends planes covering 0–90° to cover 0–180° by
// reflection about 90°. The 90° plane is not duplicated.
func MirrorFirstQuadrant(planes []Plane) []Plane {
	out := cloneAll(planes)
	if len(planes) < 2 {
		return out
	}
	return append(out, reflected(planes[:len(planes)-1], math.Pi/2)...)
}

// MirrorFirstHemisphere extends planes covering 0–180° to cover 0–360° by
// reflection about 180°. Neither the 180° plane nor the image of the 0°
// plane at 360° is added.
func MirrorFirstHemisphere(planes []Plane) []Plane {
	out := cloneAll(planes)
	if len(planes) < 3 {
		return out
	}
	return append(out, reflected(planes[1:len(planes)-1], math.Pi)...)
}

// MirrorSecondAndThirdQuadrants rebuilds a full ring from planes covering
// 90–270°. The 0–90° range is the stored wedge reflected about 90° and the
// 270–360° range is the wedge reflected about 270°; boundary planes are not
// duplicated.
func MirrorSecondAndThirdQuadrants(planes []Plane) []Plane {
	n := len(planes)
	half := n / 2
	if half < 1 {
		return cloneAll(planes)
	}

	out := reflected(planes[1:half+1], math.Pi/2)
	out = append(out, cloneAll(planes)...)
	if half > 1 {
		out = append(out, reflected(planes[half+1:2*half], 3*math.Pi/2)...)
	}
	return out
}
