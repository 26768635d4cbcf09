package lines

import (
	"strings"

	"github.com/matzehuels/lidkit/pkg/errors"
)

// Token is one whitespace- or comma-separated value and its position.
type Token struct {
	Text  string
	Line  int
	Index int // 1-based within its line
}

func isDelim(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\v' || r == '\f'
}

// Fields splits a single line on whitespace and commas.
func Fields(s string) []string {
	return strings.FieldsFunc(s, isDelim)
}

// Tokenize flattens ls into one token stream, ignoring line breaks.
func Tokenize(ls []Line) []Token {
	var out []Token
	for _, l := range ls {
		for i, f := range Fields(l.Text) {
			out = append(out, Token{Text: f, Line: l.Num, Index: i + 1})
		}
	}
	return out
}

// Tokens is a cursor over a token stream. lastLine is reported when the
// stream runs dry.
type Tokens struct {
	toks     []Token
	pos      int
	lastLine int
}

// NewTokens wraps toks; lastLine is the final line of the input.
func NewTokens(toks []Token, lastLine int) *Tokens {
	return &Tokens{toks: toks, lastLine: lastLine}
}

// Remaining returns the number of unread tokens.
func (t *Tokens) Remaining() int { return len(t.toks) - t.pos }

// Last returns the most recently consumed token.
func (t *Tokens) Last() Token {
	if t.pos == 0 {
		return Token{Line: t.lastLine}
	}
	return t.toks[t.pos-1]
}

// Final returns the last token of the stream.
func (t *Tokens) Final() Token {
	if len(t.toks) == 0 {
		return Token{Line: t.lastLine}
	}
	return t.toks[len(t.toks)-1]
}

func (t *Tokens) line() int {
	if len(t.toks) > 0 {
		return t.toks[len(t.toks)-1].Line
	}
	return t.lastLine
}

// Float consumes one float token.
func (t *Tokens) Float(field string) (float64, error) {
	if t.Remaining() < 1 {
		return 0, errors.New(errors.ErrCodeLengthMismatch, "unexpected end of input reading %s", field).At(t.line())
	}
	tok := t.toks[t.pos]
	t.pos++
	return ParseFloat(tok.Text, field, tok.Line, tok.Index)
}

// Int consumes one integer token.
func (t *Tokens) Int(field string) (int, error) {
	if t.Remaining() < 1 {
		return 0, errors.New(errors.ErrCodeLengthMismatch, "unexpected end of input reading %s", field).At(t.line())
	}
	tok := t.toks[t.pos]
	t.pos++
	return ParseInt(tok.Text, field, tok.Line, tok.Index)
}

// Floats consumes n float tokens. When fewer than n remain, the error cites
// the line of the last available token along with both counts.
func (t *Tokens) Floats(field string, n int) ([]float64, error) {
	if avail := t.Remaining(); avail < n {
		t.pos = len(t.toks)
		return nil, errors.Length(t.line(), field, n, avail)
	}
	out := make([]float64, n)
	for i := range out {
		v, err := t.Float(field)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Pos returns the index of the next unread token.
func (t *Tokens) Pos() int { return t.pos }

// Shortfall checks the row of n tokens starting at token index start
// against the line layout. Values are consumed by position, so a row may
// wrap or share a line with the next record. A row that starts a line,
// runs onto later lines and stops before the end of its last line has
// most likely borrowed values from the record below; Shortfall then
// returns a LENGTH_MISMATCH citing the row's own last line and the count
// it holds there. It returns nil when the layout gives no such evidence.
func (t *Tokens) Shortfall(field string, start, n int) error {
	end := start + n
	if n <= 0 || start < 0 || end >= len(t.toks) {
		return nil
	}
	first, last := t.toks[start], t.toks[end-1]
	if first.Index != 1 || first.Line == last.Line || t.toks[end].Line != last.Line {
		return nil
	}

	actual, line := 0, first.Line
	for _, tok := range t.toks[start:end] {
		if tok.Line < last.Line {
			actual++
			line = tok.Line
		}
	}
	return errors.Length(line, field, n, actual)
}

// Rest consumes every remaining token as a float.
func (t *Tokens) Rest(field string) ([]float64, error) {
	return t.Floats(field, t.Remaining())
}
