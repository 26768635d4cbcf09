package ies

// Document is a parsed IES LM-63 file. Angles are in degrees, exactly as
// written in the file.
type Document struct {
	Standard Standard
	Keywords Keywords
	Tilt     Tilt

	NumLamps        int
	LumensPerLamp   float64 // -1 for absolute photometry
	Multiplier      float64
	NVertical       int
	NHorizontal     int
	PhotometricType PhotometricType
	Units           Units
	Width           float64
	Length          float64
	Height          float64
	BallastFactor   float64
	FutureUse       float64 // ballast-lamp photometric factor in LM-63-1986/1991
	InputWatts      float64

	VerticalAngles   []float64
	HorizontalAngles []float64
	// Candela holds NHorizontal consecutive blocks of NVertical values.
	Candela []float64
}

// AbsolutePhotometry reports whether the file uses absolute photometry.
func (d *Document) AbsolutePhotometry() bool { return d.LumensPerLamp == -1 }

// LuminousOpening decodes the opening shape from the signed dimensions.
func (d *Document) LuminousOpening() LuminousOpening {
	return DecodeOpening(d.Width, d.Length, d.Height)
}

// Block returns the candela values for horizontal angle index h.
func (d *Document) Block(h int) []float64 {
	return d.Candela[h*d.NVertical : (h+1)*d.NVertical]
}

// VerticalAnglesValid reports whether angles are non-decreasing and span
// a lower hemisphere (0–90°), an upper hemisphere (90–180°) or the whole
// vertical range (0–180°).
func VerticalAnglesValid(angles []float64) bool {
	if len(angles) == 0 || !nonDecreasing(angles) {
		return false
	}
	first, last := angles[0], angles[len(angles)-1]
	switch {
	case first == 0 && last == 90,
		first == 90 && last == 180,
		first == 0 && last == 180:
		return true
	}
	return false
}

// HorizontalAnglesValid reports whether angles are non-decreasing, start
// at 0° and end on an allowed lateral symmetry: 0° (axial), 90°
// (quadrant), or anywhere in 180–360° (half or none).
func HorizontalAnglesValid(angles []float64) bool {
	if len(angles) == 0 || !nonDecreasing(angles) || angles[0] != 0 {
		return false
	}
	last := angles[len(angles)-1]
	return last == 0 || last == 90 || (last >= 180 && last <= 360)
}

func nonDecreasing(vs []float64) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i] < vs[i-1] {
			return false
		}
	}
	return true
}
