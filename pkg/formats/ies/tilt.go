package ies

import (
	"strconv"
	"strings"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/formats/internal/lines"
)

// TiltMode says where a file's tilt table lives.
type TiltMode int

const (
	TiltNone TiltMode = iota
	TiltInclude
	TiltFile
)

// Tilt holds the lamp-position multipliers of a TILT section. The table is
// kept for re-serialization and is not applied to candela values.
type Tilt struct {
	Mode     TiltMode
	File     string    // referenced file name when Mode is TiltFile
	Geometry int       // lamp-to-luminaire geometry code
	Angles   []float64 // degrees
	Factors  []float64
}

// Loaded reports whether the table data is present.
func (t Tilt) Loaded() bool { return t.Angles != nil }

// Header returns the TILT= line.
func (t Tilt) Header() string {
	switch t.Mode {
	case TiltInclude:
		return "TILT=INCLUDE"
	case TiltFile:
		return "TILT=" + t.File
	default:
		return "TILT=NONE"
	}
}

// Table returns the four table lines.
func (t Tilt) Table() []string {
	return []string{
		strconv.Itoa(t.Geometry),
		strconv.Itoa(len(t.Angles)),
		joinFloats(t.Angles),
		joinFloats(t.Factors),
	}
}

// String renders the section as it appears in an IES file.
func (t Tilt) String() string {
	if t.Mode != TiltInclude {
		return t.Header() + "\n"
	}
	return t.Header() + "\n" + strings.Join(t.Table(), "\n") + "\n"
}

// readTable consumes geometry, count, angles and multipliers.
func readTable(tk *lines.Tokens) (Tilt, error) {
	var t Tilt
	var err error
	if t.Geometry, err = tk.Int("tilt geometry"); err != nil {
		return t, err
	}
	n, err := tk.Int("tilt angle count")
	if err != nil {
		return t, err
	}
	if n < 0 {
		return t, errors.New(errors.ErrCodeInvalidInput, "tilt angle count %d is negative", n)
	}
	angles := row{"tilt angles", tk.Pos(), n}
	if t.Angles, err = tk.Floats(angles.field, n); err != nil {
		return t, err
	}
	if t.Factors, err = tk.Floats("tilt multipliers", n); err != nil {
		return t, shortRow(tk, err, angles)
	}
	return t, nil
}

// ParseTilt parses a standalone tilt table as stored in a TILT=<file>
// reference.
func ParseTilt(text string) (Tilt, error) {
	ls := lines.Split(text)
	if len(ls) > 0 && strings.HasPrefix(ls[0].Text, "TILT=") {
		ls = ls[1:]
	}
	last := 0
	if len(ls) > 0 {
		last = ls[len(ls)-1].Num
	}
	tk := lines.NewTokens(lines.Tokenize(ls), last)
	t, err := readTable(tk)
	if err != nil {
		return Tilt{}, err
	}
	if tk.Remaining() > 0 {
		return Tilt{}, errors.New(errors.ErrCodeTooManyLines, "tilt table has %d trailing values", tk.Remaining())
	}
	t.Mode = TiltInclude
	return t, nil
}

// LoadTilt reads a tilt table from path.
func LoadTilt(path string) (Tilt, error) {
	text, err := lines.ReadFile(path)
	if err != nil {
		return Tilt{}, err
	}
	return ParseTilt(text)
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
