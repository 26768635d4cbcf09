package eulumdat

// Fixed layout sizes.
const (
	headerLines  = 26
	lampFields   = 6
	directRatios = 10
)

// LampSet is one standard lamp set. Each field is stored in its own
// section of the file, one line per set.
type LampSet struct {
	Count            int // negative for absolute photometry
	Type             string
	Flux             float64 // lm
	ColorTemperature string
	ColorRendering   string
	Wattage          float64 // W, ballast included
}

// Document is a parsed EULUMDAT file. Dimensions are in millimetres and
// angles in degrees, as written.
type Document struct {
	Header   string
	Type     Type
	Symmetry Symmetry

	NCPlanes       int // Mc
	CPlaneDistance float64
	NGAngles       int // Ng
	GAngleDistance float64

	ReportNumber    string
	LuminaireName   string
	LuminaireNumber string
	Filename        string
	DateUser        string

	LuminaireLength float64 // or diameter
	LuminaireWidth  float64 // 0 for circular luminaires
	LuminaireHeight float64

	AreaLength     float64 // or diameter
	AreaWidth      float64
	AreaHeightC0   float64
	AreaHeightC90  float64
	AreaHeightC180 float64
	AreaHeightC270 float64

	DownwardFluxFraction float64 // %
	LightOutputRatio     float64 // %
	ConversionFactor     float64
	Tilt                 float64

	Lamps        []LampSet
	DirectRatios []float64 // room indices k = 0.6 ... 5

	CAngles []float64
	GAngles []float64
	// Intensities holds Mc2-Mc1+1 consecutive blocks of Ng values, one per
	// stored C-plane.
	Intensities []float64
}

// Mc1 is the 1-based index of the first stored C-plane.
func (d *Document) Mc1() int {
	if d.Symmetry == C90C270 {
		return 3*(d.NCPlanes/4) + 1
	}
	return 1
}

// Mc2 is the 1-based index of the last stored C-plane.
func (d *Document) Mc2() int {
	switch d.Symmetry {
	case AboutVerticalAxis:
		return 1
	case C0C180:
		return d.NCPlanes/2 + 1
	case C90C270:
		return d.Mc1() + d.NCPlanes/2
	case C0C180C90C270:
		return d.NCPlanes/4 + 1
	default:
		return d.NCPlanes
	}
}

// StoredPlanes is the number of C-planes with intensity data.
func (d *Document) StoredPlanes() int { return d.Mc2() - d.Mc1() + 1 }

// ExpectedLines is the number of lines a well-formed file has.
func (d *Document) ExpectedLines() int {
	return headerLines + lampFields*len(d.Lamps) + directRatios +
		d.NCPlanes + d.NGAngles + d.StoredPlanes()*d.NGAngles
}

// wedge returns the index range of CAngles covered by stored planes.
func (d *Document) wedge() (lo, hi int) {
	n := d.StoredPlanes()
	if len(d.CAngles) == n {
		return 0, n
	}
	if d.Symmetry == C90C270 {
		lo = d.NCPlanes / 4
	}
	return lo, lo + n
}

// Block returns the intensities of the i-th stored C-plane.
func (d *Document) Block(i int) []float64 {
	return d.Intensities[i*d.NGAngles : (i+1)*d.NGAngles]
}

// TotalFlux returns the summed lamp flux over all lamp sets.
func (d *Document) TotalFlux() float64 {
	var sum float64
	for _, l := range d.Lamps {
		sum += l.Flux
	}
	return sum
}
