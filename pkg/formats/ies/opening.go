package ies

import "fmt"

// Shape classifies a luminous opening. LM-63 encodes the shape in the signs
// of the width, length and height fields: a negative value marks a rounded
// dimension.
type Shape int

const (
	Point Shape = iota
	Rectangular
	RectangularLuminousSides
	Circular
	Ellipse
	VerticalCylinder
	VerticalEllipsoidalCylinder
	Sphere
	EllipsoidalSpheroid
	HorizontalCylinderAlong
	HorizontalEllipsoidalCylinderAlong
	HorizontalCylinderPerpendicular
	HorizontalEllipsoidalCylinderPerpendicular
	VerticalCircle
	VerticalEllipse
)

var shapeNames = [...]string{
	Point:                              "point",
	Rectangular:                        "rectangular",
	RectangularLuminousSides:           "rectangular with luminous sides",
	Circular:                           "circular",
	Ellipse:                            "ellipse",
	VerticalCylinder:                   "vertical cylinder",
	VerticalEllipsoidalCylinder:        "vertical ellipsoidal cylinder",
	Sphere:                             "sphere",
	EllipsoidalSpheroid:                "ellipsoidal spheroid",
	HorizontalCylinderAlong:            "horizontal cylinder along photometric horizontal",
	HorizontalEllipsoidalCylinderAlong: "horizontal ellipsoidal cylinder along photometric horizontal",
	HorizontalCylinderPerpendicular:    "horizontal cylinder perpendicular to photometric horizontal",
	HorizontalEllipsoidalCylinderPerpendicular: "horizontal ellipsoidal cylinder perpendicular to photometric horizontal",
	VerticalCircle:  "vertical circle facing photometric horizontal",
	VerticalEllipse: "vertical ellipse facing photometric horizontal",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// LuminousOpening is a decoded opening. Dimensions are positive and in the
// file's units; Diameter is set for round shapes, the unused fields are 0.
type LuminousOpening struct {
	Shape    Shape
	Width    float64
	Length   float64
	Height   float64
	Diameter float64
}

// DecodeOpening interprets signed width, length and height fields.
func DecodeOpening(w, l, h float64) LuminousOpening {
	if w == 0 && l == 0 && h == 0 {
		return LuminousOpening{Shape: Point}
	}

	if w >= 0 {
		switch {
		case l < 0 && l == h:
			return LuminousOpening{Shape: HorizontalCylinderPerpendicular, Width: w, Diameter: -l}
		case l < 0:
			return LuminousOpening{Shape: HorizontalEllipsoidalCylinderPerpendicular, Width: w, Length: -l, Height: -h}
		case h == 0:
			return LuminousOpening{Shape: Rectangular, Width: w, Length: l}
		default:
			return LuminousOpening{Shape: RectangularLuminousSides, Width: w, Length: l, Height: h}
		}
	}

	switch {
	case l == 0 && w == h:
		return LuminousOpening{Shape: VerticalCircle, Diameter: -w}
	case l == 0:
		return LuminousOpening{Shape: VerticalEllipse, Width: -w, Height: -h}
	case l > 0 && w == h:
		return LuminousOpening{Shape: HorizontalCylinderAlong, Diameter: -w, Length: l}
	case l > 0:
		return LuminousOpening{Shape: HorizontalEllipsoidalCylinderAlong, Width: -w, Length: l, Height: -h}
	}

	// Width and length both rounded.
	switch {
	case h == 0 && w == l:
		return LuminousOpening{Shape: Circular, Diameter: -w}
	case h == 0:
		return LuminousOpening{Shape: Ellipse, Width: -w, Length: -l}
	case h < 0 && w == l && l == h:
		return LuminousOpening{Shape: Sphere, Diameter: -w}
	case h < 0:
		return LuminousOpening{Shape: EllipsoidalSpheroid, Width: -w, Length: -l, Height: -h}
	case w == l:
		return LuminousOpening{Shape: VerticalCylinder, Diameter: -w, Height: h}
	default:
		return LuminousOpening{Shape: VerticalEllipsoidalCylinder, Width: -w, Length: -l, Height: h}
	}
}
