package ies

import "github.com/matzehuels/lidkit/pkg/errors"

// PhotometricType is the goniometer type declared in the header.
type PhotometricType int

const (
	TypeC PhotometricType = 1
	TypeB PhotometricType = 2
	TypeA PhotometricType = 3
)

// PhotometricTypeFromCode validates a raw header code.
func PhotometricTypeFromCode(code int) (PhotometricType, error) {
	switch t := PhotometricType(code); t {
	case TypeC, TypeB, TypeA:
		return t, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidCode, "photometric type %d is not 1 (C), 2 (B) or 3 (A)", code)
}

func (t PhotometricType) String() string {
	switch t {
	case TypeC:
		return "C"
	case TypeB:
		return "B"
	case TypeA:
		return "A"
	default:
		return "?"
	}
}

// Units is the unit of the luminous opening dimensions.
type Units int

const (
	Feet   Units = 1
	Meters Units = 2
)

// UnitsFromCode validates a raw header code.
func UnitsFromCode(code int) (Units, error) {
	switch u := Units(code); u {
	case Feet, Meters:
		return u, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidCode, "opening units %d is not 1 (feet) or 2 (meters)", code)
}

func (u Units) String() string {
	if u == Feet {
		return "feet"
	}
	return "meters"
}
