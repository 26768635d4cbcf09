package formats

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/formats/eulumdat"
	"github.com/matzehuels/lidkit/pkg/formats/ies"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Format reads and writes one photometric file format.
//
// Implementations live in the format subpackages (ies.Format,
// eulumdat.Format).
type Format interface {
	photweb.Reader
	photweb.Writer

	// Name returns the format identifier ("ies", "eulumdat").
	Name() string

	// Extensions lists the file extensions the format claims, lower case
	// with the leading dot.
	Extensions() []string

	// Supports reports whether filename has one of the format's
	// extensions. Matching ignores case.
	Supports(filename string) bool

	// Decode parses raw file bytes into a web.
	Decode(data []byte) (*photweb.Web, error)

	// Encode serializes a web to file bytes.
	Encode(web *photweb.Web) ([]byte, error)
}

// All returns every supported format, IES first.
func All() []Format {
	return []Format{ies.Format{}, eulumdat.Format{}}
}

// Detect finds the format for path by its extension.
//
// Formats are checked in order and the first match is returned. When
// formats is empty, All is used. A path without a supported extension
// returns an UNSUPPORTED_EXTENSION error naming the extension.
func Detect(path string, formats ...Format) (Format, error) {
	if len(formats) == 0 {
		formats = All()
	}
	name := filepath.Base(path)
	for _, f := range formats {
		if f.Supports(name) {
			return f, nil
		}
	}
	ext := filepath.Ext(name)
	if ext == "" {
		return nil, errors.New(errors.ErrCodeUnsupportedExtension, "%s has no file extension", name)
	}
	return nil, errors.New(errors.ErrCodeUnsupportedExtension, "unsupported file extension %q", ext)
}

// ByName returns the format called name, ignoring case.
func ByName(name string) (Format, error) {
	for _, f := range All() {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", name)
}

// Names returns the identifiers of All.
func Names() []string {
	var out []string
	for _, f := range All() {
		out = append(out, f.Name())
	}
	return out
}
