package binding

import (
	"errors"
	"strconv"
	"testing"
)

func TestParsePipeline(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int64
		wantError bool
	}{
		{name: "Padded", input: " 123 ", want: 123},
		{name: "Tabs and newline", input: "\t42\n", want: 42},
		{name: "Negative", input: "-7", want: -7},
		{name: "Explicit plus", input: "+8", want: 8},
		{name: "Empty", input: "", wantError: true},
		{name: "Whitespace only", input: "   ", wantError: true},
		{name: "Trailing letter", input: "12a", wantError: true},
		{name: "Sign only", input: "-", wantError: true},
		{name: "Plus only", input: "+", wantError: true},
		{name: "Inner space", input: "1 2", wantError: true},
		{name: "Overflow", input: "9223372036854775808", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePipeline(tt.input)

			if tt.wantError {
				if !errors.Is(err, ErrParse) {
					t.Errorf("ParsePipeline(%q) error = %v, want ErrParse", tt.input, err)
				}
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Input != tt.input {
					t.Errorf("ParsePipeline(%q) error = %#v, want *ParseError with input", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Errorf("ParsePipeline(%q) error = %v, want nil", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("ParsePipeline(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStages(t *testing.T) {
	st, err := ParseStages("  99 ")
	if err != nil {
		t.Fatalf("ParseStages() error = %v", err)
	}
	want := Stages{Raw: "  99 ", Trimmed: "99", Value: 99}
	if st != want {
		t.Errorf("ParseStages() = %+v, want %+v", st, want)
	}

	st, err = ParseStages(" x ")
	if err == nil {
		t.Fatal("ParseStages(\" x \") error = nil, want error")
	}
	if st.Trimmed != "x" {
		t.Errorf("Trimmed on failure = %q, want %q", st.Trimmed, "x")
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	_, err := ParsePipeline("99999999999999999999")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("error = %v, want it to wrap strconv.ErrRange", err)
	}

	_, err = ParsePipeline("abc")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error = %v, want it to wrap strconv.ErrSyntax", err)
	}
}
