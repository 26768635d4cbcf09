package ies

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/formats/internal/lines"
)

// ParseFile reads and parses the IES file at path. A TILT=<file> reference
// is loaded from the directory holding path when that file exists; when it
// does not, the reference is kept and Tilt.Loaded reports false.
func ParseFile(path string) (*Document, error) {
	text, err := lines.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(text)
	if err != nil {
		return nil, err
	}

	if doc.Tilt.Mode == TiltFile {
		ref := filepath.Join(filepath.Dir(path), filepath.Base(doc.Tilt.File))
		if _, statErr := os.Stat(ref); statErr == nil {
			t, err := LoadTilt(ref)
			if err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "tilt file %s", doc.Tilt.File)
			}
			t.Mode, t.File = TiltFile, doc.Tilt.File
			doc.Tilt = t
		}
	}
	return doc, nil
}

// Parse parses IES LM-63 text. Parsing stops at the first error, which
// carries the 1-based line (and token, for numeric fields) where it was
// found. No document is returned on error.
func Parse(text string) (*Document, error) {
	b := &builder{r: lines.NewReader(text)}
	if err := b.header(); err != nil {
		return nil, err
	}
	if err := b.values(); err != nil {
		return nil, err
	}
	return b.doc.freeze(), nil
}

// builder accumulates a Document while parsing.
type builder struct {
	r   *lines.Reader
	doc Document
	tk  *lines.Tokens
}

// header reads the standard tag, keyword block and TILT line.
func (b *builder) header() error {
	first, ok := b.r.Peek()
	if !ok {
		return errors.New(errors.ErrCodeMissingMarker, "empty file: no TILT= line")
	}
	if std, known := StandardFromTag(first.Text); known {
		b.doc.Standard = std
		b.r.Next()
	}

	for {
		l, ok := b.r.Next()
		if !ok {
			return errors.New(errors.ErrCodeMissingMarker, "no TILT= line found").At(b.r.LastLine())
		}
		if value, found := strings.CutPrefix(l.Text, "TILT="); found {
			return b.tilt(strings.TrimSpace(value))
		}
		if l.Text != "" {
			b.doc.Keywords.add(l.Text)
		}
	}
}

func (b *builder) tilt(value string) error {
	rest := b.r.Skip()
	b.tk = lines.NewTokens(lines.Tokenize(rest), b.r.LastLine())

	switch value {
	case "NONE":
		b.doc.Tilt = Tilt{Mode: TiltNone}
	case "INCLUDE":
		t, err := readTable(b.tk)
		if err != nil {
			return err
		}
		t.Mode = TiltInclude
		b.doc.Tilt = t
	default:
		b.doc.Tilt = Tilt{Mode: TiltFile, File: value}
	}
	return nil
}

// values consumes the flattened token stream after the TILT section.
func (b *builder) values() error {
	d := &b.doc
	tk := b.tk
	var err error

	if d.NumLamps, err = tk.Int("number of lamps"); err != nil {
		return err
	}
	if d.LumensPerLamp, err = tk.Float("lumens per lamp"); err != nil {
		return err
	}
	if d.Multiplier, err = tk.Float("candela multiplier"); err != nil {
		return err
	}
	if d.NVertical, err = b.count("number of vertical angles"); err != nil {
		return err
	}
	if d.NHorizontal, err = b.count("number of horizontal angles"); err != nil {
		return err
	}

	code, err := tk.Int("photometric type")
	if err != nil {
		return err
	}
	if d.PhotometricType, err = PhotometricTypeFromCode(code); err != nil {
		return positioned(err, tk.Last())
	}
	if code, err = tk.Int("units type"); err != nil {
		return err
	}
	if d.Units, err = UnitsFromCode(code); err != nil {
		return positioned(err, tk.Last())
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"luminous opening width", &d.Width},
		{"luminous opening length", &d.Length},
		{"luminous opening height", &d.Height},
		{"ballast factor", &d.BallastFactor},
		{"future use", &d.FutureUse},
		{"input watts", &d.InputWatts},
	} {
		if *f.dst, err = tk.Float(f.name); err != nil {
			return err
		}
	}

	vRow := row{"vertical angles", tk.Pos(), d.NVertical}
	if d.VerticalAngles, err = tk.Floats(vRow.field, vRow.n); err != nil {
		return err
	}
	if !VerticalAnglesValid(d.VerticalAngles) {
		err = errors.New(errors.ErrCodeInvalidAngles,
			"vertical angles must be non-decreasing and span 0–90°, 90–180° or 0–180°").At(tk.Last().Line)
		return shortRow(tk, err, vRow)
	}

	hRow := row{"horizontal angles", tk.Pos(), d.NHorizontal}
	if d.HorizontalAngles, err = tk.Floats(hRow.field, hRow.n); err != nil {
		return shortRow(tk, err, vRow)
	}
	if !HorizontalAnglesValid(d.HorizontalAngles) {
		err = errors.New(errors.ErrCodeInvalidAngles,
			"horizontal angles must be non-decreasing, start at 0° and end at 0°, 90° or 180–360°").At(tk.Last().Line)
		return shortRow(tk, err, vRow, hRow)
	}

	want := d.NVertical * d.NHorizontal
	if got := tk.Remaining(); got != want {
		line := b.r.LastLine()
		if got > 0 {
			line = tk.Final().Line
		}
		return shortRow(tk, errors.Length(line, "candela values", want, got), vRow, hRow)
	}
	d.Candela, err = tk.Rest("candela values")
	return err
}

func (b *builder) count(field string) (int, error) {
	n, err := b.tk.Int(field)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		last := b.tk.Last()
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be at least 1, got %d", field, n).AtToken(last.Line, last.Index)
	}
	return n, nil
}

// row is an angle array read by position, remembered so a later count or
// range failure can be traced back to a row that was laid out short.
type row struct {
	field    string
	start, n int
}

// shortRow returns the length error of the first row whose line layout
// shows it borrowed values from the next record, or err when none did.
func shortRow(tk *lines.Tokens, err error, rows ...row) error {
	for _, r := range rows {
		if le := tk.Shortfall(r.field, r.start, r.n); le != nil {
			return le
		}
	}
	return err
}

func positioned(err error, tok lines.Token) error {
	if e, ok := err.(*errors.Error); ok {
		return e.AtToken(tok.Line, tok.Index)
	}
	return err
}

// freeze returns a copy of the accumulated document.
func (d Document) freeze() *Document {
	out := d
	return &out
}
