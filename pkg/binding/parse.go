package binding

import (
	"strconv"
	"strings"
)

// Stages records each value the parse pipeline bound to its name.
type Stages struct {
	Raw     string
	Trimmed string
	Value   int64
}

// ParsePipeline trims raw and parses it as a signed base-10 integer.
// Failures are returned as *ParseError.
func ParsePipeline(raw string) (int64, error) {
	st, err := ParseStages(raw)
	if err != nil {
		return 0, err
	}
	return st.Value, nil
}

// ParseStages runs the pipeline as a chain of shadows of one name and
// returns every stage. On failure the stages reached so far are
// returned along with the error.
func ParseStages(raw string) (Stages, error) {
	input := Let("input", raw)
	st := Stages{Raw: input.Value()}

	trimmed := Shadow(input, strings.TrimSpace)
	st.Trimmed = trimmed.Value()

	parsed, err := ShadowErr(trimmed, func(s string) (int64, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			var cause error = err
			if ne, ok := err.(*strconv.NumError); ok {
				cause = ne.Err
			}
			return 0, &ParseError{Input: raw, Err: cause}
		}
		return n, nil
	})
	if err != nil {
		return st, err
	}
	st.Value = parsed.Value()
	return st, nil
}
