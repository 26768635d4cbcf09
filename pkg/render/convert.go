package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"slices"

	"github.com/matzehuels/lidkit/pkg/errors"
)

// Output formats accepted by the renderers.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatHTML = "html"
	FormatDOT  = "dot"
)

// ValidateFormat reports an INVALID_FORMAT error when format is not one of
// allowed.
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (want one of %v)", format, allowed)
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, FormatPDF)
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, FormatPNG, "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s export requires librsvg; install with `brew install librsvg` or `apt install librsvg2-bin`", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
