package lines

import (
	"testing"

	"github.com/matzehuels/lidkit/pkg/errors"
)

func TestSplit(t *testing.T) {
	got := Split("  a \r\n\nb\n")
	want := []Line{{1, "a"}, {2, ""}, {3, "b"}}

	if len(got) != len(want) {
		t.Fatalf("Split() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Split()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := Split(""); len(got) != 0 {
		t.Errorf("Split(\"\") = %v, want empty", got)
	}
}

func TestReaderFixedFields(t *testing.T) {
	r := NewReader("header\n2\n12.5\nnope\n")

	if s, err := r.String("header"); err != nil || s != "header" {
		t.Errorf("String() = %q, %v", s, err)
	}
	if v, err := r.Int("type"); err != nil || v != 2 {
		t.Errorf("Int() = %d, %v", v, err)
	}
	if v, err := r.Float("spacing"); err != nil || v != 12.5 {
		t.Errorf("Float() = %v, %v", v, err)
	}

	_, err := r.Float("count")
	if !errors.Is(err, errors.ErrCodeMalformedNumber) {
		t.Fatalf("Float() error = %v, want MALFORMED_NUMBER", err)
	}
	if line, _ := errors.Position(err); line != 4 {
		t.Errorf("error line = %d, want 4", line)
	}

	_, err = r.String("extra")
	if !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Errorf("String() past end error = %v, want LENGTH_MISMATCH", err)
	}
}

func TestReaderSpans(t *testing.T) {
	r := NewReader("1\n2\n3\nx\ny\n")

	nums, err := r.Ints(r.Span("counts", 3))
	if err != nil {
		t.Fatalf("Ints() error = %v", err)
	}
	if len(nums) != 3 || nums[2] != 3 {
		t.Errorf("Ints() = %v, want [1 2 3]", nums)
	}

	sp := r.Span("names", 4)
	if sp.Start != 3 || sp.End() != 7 {
		t.Errorf("Span = %+v, want start 3 end 7", sp)
	}

	_, err = r.Strings(sp)
	if !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Fatalf("Strings() error = %v, want LENGTH_MISMATCH", err)
	}
	if line, _ := errors.Position(err); line != 5 {
		t.Errorf("error line = %d, want 5", line)
	}
	if !r.Done() {
		t.Error("Done() = false after short span, want true")
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{" 3 ", 3, false},
		{"2.0", 2, false},
		{"2.5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseInt(tt.in, "n", 1, 1)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseInt(%q) = %d, %v; want %d, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
