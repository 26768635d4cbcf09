package ies

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/lidkit/pkg/formats/internal/lines"
)

// String serializes the document as IES LM-63 text: the standard tag (none
// for LM-63-1986), keyword lines, the TILT section, two lines of scalar
// fields, one line each for the vertical and horizontal angles, then one
// candela line per horizontal angle.
func (d *Document) String() string {
	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	if tag := d.Standard.Tag(); tag != "" {
		line(tag)
	}
	for _, l := range d.Keywords.lines() {
		line(l)
	}
	sb.WriteString(d.Tilt.String())

	line(strings.Join([]string{
		strconv.Itoa(d.NumLamps),
		formatFloat(d.LumensPerLamp),
		formatFloat(d.Multiplier),
		strconv.Itoa(d.NVertical),
		strconv.Itoa(d.NHorizontal),
		strconv.Itoa(int(d.PhotometricType)),
		strconv.Itoa(int(d.Units)),
		formatFloat(d.Width),
		formatFloat(d.Length),
		formatFloat(d.Height),
	}, " "))
	line(strings.Join([]string{
		formatFloat(d.BallastFactor),
		formatFloat(d.FutureUse),
		formatFloat(d.InputWatts),
	}, " "))

	line(joinFloats(d.VerticalAngles))
	line(joinFloats(d.HorizontalAngles))
	for h := range d.NHorizontal {
		line(joinFloats(d.Block(h)))
	}
	return sb.String()
}

// WriteFile writes the document to path.
func (d *Document) WriteFile(path string) error {
	return lines.WriteFile(path, d.String())
}

// round trims conversion noise from angles that went through radians.
func round(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round(v)
	}
	return out
}
