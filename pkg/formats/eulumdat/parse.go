package eulumdat

import (
	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/formats/internal/lines"
)

// ParseFile reads and parses the EULUMDAT file at path.
func ParseFile(path string) (*Document, error) {
	text, err := lines.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Parse parses EULUMDAT text. Every value sits on its own line; the
// length of each variable section is fixed by counts read earlier in the
// file. Parsing stops at the first error, which carries its 1-based line.
// No document is returned on error.
func Parse(text string) (*Document, error) {
	b := &builder{r: lines.NewReader(text)}
	for _, step := range []func() error{b.header, b.lamps, b.photometry, b.trailing} {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return b.doc.freeze(), nil
}

// builder accumulates a Document while parsing.
type builder struct {
	r   *lines.Reader
	doc Document
}

type stringField struct {
	name string
	dst  *string
}

type floatField struct {
	name string
	dst  *float64
}

func (b *builder) strings(fields ...stringField) error {
	for _, f := range fields {
		v, err := b.r.String(f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (b *builder) floats(fields ...floatField) error {
	for _, f := range fields {
		v, err := b.r.Float(f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// count reads a non-negative count, or a positive one when positive is set.
func (b *builder) count(field string, positive bool) (int, error) {
	n, err := b.r.Int(field)
	if err != nil {
		return 0, err
	}
	if n < 0 || (positive && n == 0) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be positive, got %d", field, n).At(b.r.LineNum())
	}
	return n, nil
}

// header reads the 26 fixed lines.
func (b *builder) header() error {
	d := &b.doc
	var err error

	if d.Header, err = b.r.String("header"); err != nil {
		return err
	}

	code, err := b.r.Int("type indicator")
	if err != nil {
		return err
	}
	if d.Type, err = TypeFromCode(code); err != nil {
		return at(err, b.r.LineNum())
	}
	if code, err = b.r.Int("symmetry indicator"); err != nil {
		return err
	}
	if d.Symmetry, err = SymmetryFromCode(code); err != nil {
		return at(err, b.r.LineNum())
	}

	if d.NCPlanes, err = b.count("number of C-planes", true); err != nil {
		return err
	}
	if err = b.floats(floatField{"C-plane distance", &d.CPlaneDistance}); err != nil {
		return err
	}
	if d.NGAngles, err = b.count("number of intensities per C-plane", true); err != nil {
		return err
	}
	if err = b.floats(floatField{"intensity distance", &d.GAngleDistance}); err != nil {
		return err
	}

	if err = b.strings(
		stringField{"measurement report number", &d.ReportNumber},
		stringField{"luminaire name", &d.LuminaireName},
		stringField{"luminaire number", &d.LuminaireNumber},
		stringField{"file name", &d.Filename},
		stringField{"date/user", &d.DateUser},
	); err != nil {
		return err
	}

	return b.floats(
		floatField{"luminaire length", &d.LuminaireLength},
		floatField{"luminaire width", &d.LuminaireWidth},
		floatField{"luminaire height", &d.LuminaireHeight},
		floatField{"luminous area length", &d.AreaLength},
		floatField{"luminous area width", &d.AreaWidth},
		floatField{"luminous area height C0", &d.AreaHeightC0},
		floatField{"luminous area height C90", &d.AreaHeightC90},
		floatField{"luminous area height C180", &d.AreaHeightC180},
		floatField{"luminous area height C270", &d.AreaHeightC270},
		floatField{"downward flux fraction", &d.DownwardFluxFraction},
		floatField{"light output ratio", &d.LightOutputRatio},
		floatField{"intensity conversion factor", &d.ConversionFactor},
		floatField{"tilt", &d.Tilt},
	)
}

// lamps reads the lamp set count and the six per-set sections.
func (b *builder) lamps() error {
	n, err := b.count("number of lamp sets", false)
	if err != nil {
		return err
	}

	counts, err := b.r.Ints(b.r.Span("number of lamps", n))
	if err != nil {
		return err
	}
	types, err := b.r.Strings(b.r.Span("lamp types", n))
	if err != nil {
		return err
	}
	flux, err := b.r.Floats(b.r.Span("lamp flux", n))
	if err != nil {
		return err
	}
	temps, err := b.r.Strings(b.r.Span("colour temperatures", n))
	if err != nil {
		return err
	}
	rendering, err := b.r.Strings(b.r.Span("colour rendering groups", n))
	if err != nil {
		return err
	}
	watts, err := b.r.Floats(b.r.Span("wattages", n))
	if err != nil {
		return err
	}

	b.doc.Lamps = make([]LampSet, n)
	for i := range n {
		b.doc.Lamps[i] = LampSet{
			Count:            counts[i],
			Type:             types[i],
			Flux:             flux[i],
			ColorTemperature: temps[i],
			ColorRendering:   rendering[i],
			Wattage:          watts[i],
		}
	}
	return nil
}

// photometry reads the direct ratios, both angle lists and the intensity
// blocks of the stored C-planes.
func (b *builder) photometry() error {
	d := &b.doc
	var err error

	if d.DirectRatios, err = b.r.Floats(b.r.Span("direct ratios", directRatios)); err != nil {
		return err
	}
	if d.CAngles, err = b.r.Floats(b.r.Span("C-angles", d.NCPlanes)); err != nil {
		return err
	}
	if d.GAngles, err = b.r.Floats(b.r.Span("G-angles", d.NGAngles)); err != nil {
		return err
	}
	d.Intensities, err = b.r.Floats(b.r.Span("intensities", d.StoredPlanes()*d.NGAngles))
	return err
}

// trailing rejects anything but blank lines after the intensities.
func (b *builder) trailing() error {
	for _, l := range b.r.Skip() {
		if l.Text != "" {
			return errors.New(errors.ErrCodeTooManyLines,
				"file has more than the %d lines its header declares", b.doc.ExpectedLines()).At(l.Num)
		}
	}
	return nil
}

func at(err error, line int) error {
	if e, ok := err.(*errors.Error); ok {
		return e.At(line)
	}
	return err
}

// freeze returns a copy of the accumulated document.
func (d Document) freeze() *Document {
	out := d
	return &out
}
