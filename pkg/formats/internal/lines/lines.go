// Package lines provides the cursor-driven line reader shared by the format
// parsers.
//
// Text is split into trimmed lines that keep their 1-based line numbers;
// blank lines are preserved because they occupy a line number. Parsers
// consume fixed fields one at a time and bind variable-length sections to
// named spans whose lengths come from counts read earlier in the file.
package lines

import (
	"strconv"
	"strings"

	"github.com/matzehuels/lidkit/pkg/errors"
)

// Line is one trimmed line of input.
type Line struct {
	Num  int
	Text string
}

// Split breaks text into trimmed, numbered lines. A trailing newline does
// not produce an extra empty line.
func Split(text string) []Line {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	out := make([]Line, len(raw))
	for i, s := range raw {
		out[i] = Line{Num: i + 1, Text: strings.TrimSpace(s)}
	}
	return out
}

// Span is a named run of consecutive lines.
type Span struct {
	Name  string
	Start int // index into the line slice
	Len   int
}

// End returns the index one past the span.
func (s Span) End() int { return s.Start + s.Len }

// Reader walks a slice of lines with a cursor.
type Reader struct {
	lines []Line
	pos   int
}

// NewReader returns a reader positioned at the first line of text.
func NewReader(text string) *Reader {
	return &Reader{lines: Split(text)}
}

// Pos returns the index of the next unread line.
func (r *Reader) Pos() int { return r.pos }

// LineNum returns the number of the most recently consumed line, or 0
// before the first read.
func (r *Reader) LineNum() int {
	if r.pos == 0 {
		return 0
	}
	return r.lines[r.pos-1].Num
}

// Remaining returns the lines not yet consumed.
func (r *Reader) Remaining() []Line { return r.lines[r.pos:] }

// Done reports whether every line was consumed.
func (r *Reader) Done() bool { return r.pos >= len(r.lines) }

// LastLine returns the number of the final line, or 0 for empty input.
func (r *Reader) LastLine() int {
	if len(r.lines) == 0 {
		return 0
	}
	return r.lines[len(r.lines)-1].Num
}

// Next consumes and returns one line.
func (r *Reader) Next() (Line, bool) {
	if r.Done() {
		return Line{}, false
	}
	l := r.lines[r.pos]
	r.pos++
	return l, true
}

// Peek returns the next line without consuming it.
func (r *Reader) Peek() (Line, bool) {
	if r.Done() {
		return Line{}, false
	}
	return r.lines[r.pos], true
}

// Skip consumes the rest of the input and returns it.
func (r *Reader) Skip() []Line {
	rest := r.Remaining()
	r.pos = len(r.lines)
	return rest
}

func (r *Reader) eof(field string) error {
	return errors.New(errors.ErrCodeLengthMismatch, "unexpected end of input reading %s", field).At(r.LastLine())
}

// String consumes one line as text.
func (r *Reader) String(field string) (string, error) {
	l, ok := r.Next()
	if !ok {
		return "", r.eof(field)
	}
	return l.Text, nil
}

// Int consumes one line holding an integer.
func (r *Reader) Int(field string) (int, error) {
	l, ok := r.Next()
	if !ok {
		return 0, r.eof(field)
	}
	return ParseInt(l.Text, field, l.Num, 0)
}

// Float consumes one line holding a float.
func (r *Reader) Float(field string) (float64, error) {
	l, ok := r.Next()
	if !ok {
		return 0, r.eof(field)
	}
	return ParseFloat(l.Text, field, l.Num, 0)
}

// Span claims the next n lines under name without consuming them.
func (r *Reader) Span(name string, n int) Span {
	return Span{Name: name, Start: r.pos, Len: n}
}

// take consumes the lines of s. Fewer available lines than s.Len is a
// length mismatch reported at the last line of the input.
func (r *Reader) take(s Span) ([]Line, error) {
	avail := len(r.lines) - s.Start
	if s.Len < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: negative count %d", s.Name, s.Len)
	}
	if avail < s.Len {
		r.pos = len(r.lines)
		return nil, errors.Length(r.LastLine(), s.Name, s.Len, max(avail, 0))
	}
	r.pos = s.End()
	return r.lines[s.Start:s.End()], nil
}

// Strings consumes s as one text value per line.
func (r *Reader) Strings(s Span) ([]string, error) {
	ls, err := r.take(s)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Text
	}
	return out, nil
}

// Floats consumes s as one float per line.
func (r *Reader) Floats(s Span) ([]float64, error) {
	ls, err := r.take(s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(ls))
	for i, l := range ls {
		v, err := ParseFloat(l.Text, s.Name, l.Num, 0)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Ints consumes s as one integer per line.
func (r *Reader) Ints(s Span) ([]int, error) {
	ls, err := r.take(s)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(ls))
	for i, l := range ls {
		v, err := ParseInt(l.Text, s.Name, l.Num, 0)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseFloat parses s, reporting failures as MALFORMED_NUMBER at line and
// token (token 0 when the whole line is the value).
func ParseFloat(s, field string, line, token int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeMalformedNumber, err, "%s: invalid number %q", field, s).AtToken(line, token)
	}
	return v, nil
}

// ParseInt parses s as a base-10 integer. Values written as whole floats
// ("2.0") are accepted since some exporters emit them for counts.
func ParseInt(s, field string, line, token int) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		if err == nil {
			err = strconv.ErrSyntax
		}
		return 0, errors.Wrap(errors.ErrCodeMalformedNumber, err, "%s: invalid integer %q", field, s).AtToken(line, token)
	}
	return int(f), nil
}
