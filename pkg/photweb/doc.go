// Package photweb provides the photometric web: the format-independent model
// of a luminaire's luminous intensity distribution.
//
// # Overview
//
// A [Web] is an ordered ring of [Plane] values. Each plane is one angular
// slice of the distribution at a fixed primary angle (the C or horizontal
// angle), holding a curve of intensities sampled over a secondary angle (the
// gamma or vertical angle). All angles are stored in radians.
//
// A web holding exactly one plane is spherically symmetric: that plane stands
// for every primary angle. A web holding more than one plane is treated as a
// full circle. Plane lookups wrap modulo the plane count, so the neighbour
// below index 0 is the last plane.
//
// # Integration
//
// [Web.TotalIntensity] integrates intensity over the sphere. Each plane
// integrates Σ I·sin(γ)·δ over its secondary samples, where δ is the mean of
// the two adjacent gaps for interior samples and the single gap at either
// end. The result is weighted by the plane's [Width], which the web resolves
// from the angular distance to the two circularly adjacent planes. When those
// distances differ, the lower and upper half-widths are kept separately.
//
// # Symmetry
//
// Files store only the wedge their symmetry class requires.
// [MirrorFirstQuadrant], [MirrorFirstHemisphere] and
// [MirrorSecondAndThirdQuadrants] rebuild a full 0–360° ring by reflection,
// never duplicating the shared boundary plane.
//
// # Formats
//
// Format packages implement [Reader] and [Writer] to move webs in and out
// of files.
package photweb
