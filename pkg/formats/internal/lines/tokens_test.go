package lines

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/lidkit/pkg/errors"
)

func TestTokenize(t *testing.T) {
	toks := Tokenize(Split("1, 2 3\n\n4\t5"))

	want := []Token{
		{"1", 1, 1}, {"2", 1, 2}, {"3", 1, 3},
		{"4", 3, 1}, {"5", 3, 2},
	}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize() len = %d, want %d", len(toks), len(want))
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("Tokenize()[%d] = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokensMalformed(t *testing.T) {
	ls := Split("1 2\n3 x 5")
	tk := NewTokens(Tokenize(ls), 2)

	_, err := tk.Floats("values", 4)
	if !errors.Is(err, errors.ErrCodeMalformedNumber) {
		t.Fatalf("Floats() error = %v, want MALFORMED_NUMBER", err)
	}
	line, token := errors.Position(err)
	if line != 2 || token != 2 {
		t.Errorf("Position() = (%d, %d), want (2, 2)", line, token)
	}
}

func TestTokensShortfall(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		n          int
		wantLine   int
		wantActual int
	}{
		{"exact", "0 45 90\n1 2 3", 3, 0, 0},
		{"wrapped", "0 45\n90\n1 2 3", 3, 0, 0},
		{"shares line with next record", "0 45 90 0 90\n1 2 3", 3, 0, 0},
		{"short borrows next line", "0 45\n1 2 3", 3, 1, 2},
		{"short wrapped borrows next line", "0 45\n90\n1 2 3", 4, 2, 3},
		{"ends input", "0 45\n90", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := Split(tt.text)
			tk := NewTokens(Tokenize(ls), len(ls))
			start := tk.Pos()
			if _, err := tk.Floats("horizontal angles", tt.n); err != nil {
				t.Fatalf("Floats() error = %v", err)
			}
			err := tk.Shortfall("horizontal angles", start, tt.n)

			if tt.wantLine == 0 {
				if err != nil {
					t.Fatalf("Shortfall() = %v, want nil", err)
				}
				return
			}

			var le *errors.LengthError
			if !errors.Is(err, errors.ErrCodeLengthMismatch) {
				t.Fatalf("Shortfall() = %v, want LENGTH_MISMATCH", err)
			}
			if line, _ := errors.Position(err); line != tt.wantLine {
				t.Errorf("line = %d, want %d", line, tt.wantLine)
			}
			if !stderrors.As(err, &le) || le.Expected != tt.n || le.Actual != tt.wantActual {
				t.Errorf("LengthError = %+v, want expected %d actual %d", le, tt.n, tt.wantActual)
			}
		})
	}
}

func TestTokensFloatsEndOfInput(t *testing.T) {
	ls := Split("0 45")
	tk := NewTokens(Tokenize(ls), len(ls))

	_, err := tk.Floats("horizontal angles", 3)
	var le *errors.LengthError
	if !stderrors.As(err, &le) || le.Expected != 3 || le.Actual != 2 {
		t.Fatalf("Floats() error = %v, want 3 expected, 2 found", err)
	}
	if line, _ := errors.Position(err); line != 1 {
		t.Errorf("line = %d, want 1", line)
	}
}
