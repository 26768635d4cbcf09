package lines

import (
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/matzehuels/lidkit/pkg/errors"
)

// ReadFile reads and decodes the file at path.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return Decode(b), nil
}

// WriteFile encodes text and writes it to path.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, Encode(text), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// Decode converts raw file bytes to text. Photometric files are nominally
// ASCII, but manufacturer strings are often Windows-1252 (degree signs,
// umlauts). Valid UTF-8 is returned unchanged; anything else is decoded as
// Windows-1252, which maps every byte.
func Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// Encode converts text to Windows-1252 when every rune fits, so files
// written by lidkit open in legacy tools. Text that does not fit is written
// as UTF-8.
func Encode(s string) []byte {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return []byte(s)
	}
	return []byte(out)
}
