package eulumdat

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/lidkit/pkg/formats/internal/lines"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

var extensions = []string{".ldt", ".eul"}

// Format reads and writes EULUMDAT files as photometric webs.
type Format struct{}

func (Format) Name() string         { return "eulumdat" }
func (Format) Extensions() []string { return slices.Clone(extensions) }

func (Format) Supports(filename string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(filename)))
}

// Read parses the file at path and expands it into a web.
func (Format) Read(path string) (*photweb.Web, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Web(), nil
}

// Write serializes web to path.
func (Format) Write(web *photweb.Web, path string) error {
	doc, err := FromWeb(web)
	if err != nil {
		return err
	}
	return doc.WriteFile(path)
}

// Decode parses raw file bytes into a web.
func (Format) Decode(data []byte) (*photweb.Web, error) {
	doc, err := Parse(lines.Decode(data))
	if err != nil {
		return nil, err
	}
	return doc.Web(), nil
}

// Encode serializes web to file bytes.
func (Format) Encode(web *photweb.Web) ([]byte, error) {
	doc, err := FromWeb(web)
	if err != nil {
		return nil, err
	}
	return lines.Encode(doc.String()), nil
}
