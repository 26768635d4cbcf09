package eulumdat

import (
	"strconv"
	"strings"

	"github.com/matzehuels/lidkit/pkg/formats/internal/lines"
)

// String serializes the document as EULUMDAT text, one value per line in
// file order.
func (d *Document) String() string {
	var sb strings.Builder
	sb.Grow(d.ExpectedLines() * 8)
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	num := func(vs ...float64) {
		for _, v := range vs {
			line(formatFloat(v))
		}
	}

	line(d.Header)
	line(strconv.Itoa(int(d.Type)))
	line(strconv.Itoa(int(d.Symmetry)))
	line(strconv.Itoa(d.NCPlanes))
	num(d.CPlaneDistance)
	line(strconv.Itoa(d.NGAngles))
	num(d.GAngleDistance)
	line(d.ReportNumber)
	line(d.LuminaireName)
	line(d.LuminaireNumber)
	line(d.Filename)
	line(d.DateUser)
	num(
		d.LuminaireLength, d.LuminaireWidth, d.LuminaireHeight,
		d.AreaLength, d.AreaWidth,
		d.AreaHeightC0, d.AreaHeightC90, d.AreaHeightC180, d.AreaHeightC270,
		d.DownwardFluxFraction, d.LightOutputRatio, d.ConversionFactor, d.Tilt,
	)

	line(strconv.Itoa(len(d.Lamps)))
	for _, l := range d.Lamps {
		line(strconv.Itoa(l.Count))
	}
	for _, l := range d.Lamps {
		line(l.Type)
	}
	for _, l := range d.Lamps {
		num(l.Flux)
	}
	for _, l := range d.Lamps {
		line(l.ColorTemperature)
	}
	for _, l := range d.Lamps {
		line(l.ColorRendering)
	}
	for _, l := range d.Lamps {
		num(l.Wattage)
	}

	num(d.DirectRatios...)
	num(d.CAngles...)
	num(d.GAngles...)
	num(d.Intensities...)
	return sb.String()
}

// WriteFile writes the document to path.
func (d *Document) WriteFile(path string) error {
	return lines.WriteFile(path, d.String())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
