package formats

import (
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Builder reads a web from a file using the format chosen by the file
// extension.
type Builder struct {
	path   string
	format Format
	err    error
}

// FromFile selects the reader for path. An unsupported extension is
// reported by Build.
func FromFile(path string) *Builder {
	f, err := Detect(path)
	return &Builder{path: path, format: f, err: err}
}

// Format returns the selected format, or nil when none matched.
func (b *Builder) Format() Format { return b.format }

// Build reads the file and returns its web.
func (b *Builder) Build() (*photweb.Web, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.format.Read(b.path)
}

// Read reads any supported file at path.
func Read(path string) (*photweb.Web, error) {
	return FromFile(path).Build()
}

// Write writes web to path with the format chosen by the extension.
func Write(web *photweb.Web, path string) error {
	f, err := Detect(path)
	if err != nil {
		return err
	}
	return f.Write(web, path)
}
