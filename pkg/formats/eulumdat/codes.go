package eulumdat

import "github.com/matzehuels/lidkit/pkg/errors"

// Type is the luminaire type indicator on line 2.
type Type int

const (
	PointSourceVertical Type = 1 // point source with symmetry about the vertical axis
	Linear              Type = 2
	PointSourceOther    Type = 3 // point source with any other symmetry
)

// TypeFromCode validates a raw type indicator.
func TypeFromCode(code int) (Type, error) {
	switch t := Type(code); t {
	case PointSourceVertical, Linear, PointSourceOther:
		return t, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidCode, "type indicator %d is not 1, 2 or 3", code)
}

func (t Type) String() string {
	switch t {
	case PointSourceVertical:
		return "point source (vertical axis symmetry)"
	case Linear:
		return "linear"
	case PointSourceOther:
		return "point source (other symmetry)"
	default:
		return "unknown"
	}
}

// Symmetry is the symmetry indicator on line 3. It decides which C-planes
// the file stores and how the remaining planes are reconstructed.
type Symmetry int

const (
	NoSymmetry        Symmetry = 0
	AboutVerticalAxis Symmetry = 1
	C0C180            Symmetry = 2
	C90C270           Symmetry = 3
	C0C180C90C270     Symmetry = 4
)

// SymmetryFromCode validates a raw symmetry indicator.
func SymmetryFromCode(code int) (Symmetry, error) {
	if code < int(NoSymmetry) || code > int(C0C180C90C270) {
		return 0, errors.New(errors.ErrCodeInvalidCode, "symmetry indicator %d is not in 0..4", code)
	}
	return Symmetry(code), nil
}

func (s Symmetry) String() string {
	switch s {
	case NoSymmetry:
		return "none"
	case AboutVerticalAxis:
		return "vertical axis"
	case C0C180:
		return "C0-C180"
	case C90C270:
		return "C90-C270"
	case C0C180C90C270:
		return "C0-C180-C90-C270"
	default:
		return "unknown"
	}
}
