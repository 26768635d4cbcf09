package errors

import (
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "fixtures/a.ies", false},
		{"nested", "lab/2024/b.ldt", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../secret.ies", true},
		{"backslash", "a\\b.ies", true},
		{"control char", "a\x01.ies", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"ies", "downlight.ies", ""},
		{"ldt upper", "FLOOD.LDT", ""},

		{"empty", "", ErrCodeInvalidInput},
		{"with path /", "path/to/a.ies", ErrCodeInvalidInput},
		{"with path \\", "path\\a.ies", ErrCodeInvalidInput},
		{"hidden file", ".a.ies", ErrCodeInvalidInput},
		{"no extension", "downlight", ErrCodeUnsupportedExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateFilename(%q) code = %q, want %q", tt.input, got, tt.wantCode)
			}
		})
	}
}
