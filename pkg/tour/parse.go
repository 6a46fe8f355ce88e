package tour

import (
	"fmt"
	"strings"

	"github.com/saint0x/typetour/pkg/binding"
)

// ParseSection runs the trim-then-parse pipeline on raw as three shadow
// steps of the name "input".
func ParseSection(raw string) Section {
	return Section{Name: "parse", Title: "Parse pipeline", Steps: parseSteps(raw)}
}

func parseSteps(raw string) []Step {
	return []Step{
		{Name: "parse-raw", Run: func(st *State) (string, error) {
			in := binding.Bind(st.Scope, binding.Let("input", raw))
			logStage(st, in)
			return fmt.Sprintf("input: %q", in.Value()), nil
		}},
		{Name: "parse-trim", Run: func(st *State) (string, error) {
			s, err := lookup[string](st, "input")
			if err != nil {
				return "", err
			}
			in := binding.Bind(st.Scope, binding.Shadow(binding.Let("input", s), strings.TrimSpace))
			logStage(st, in)
			return fmt.Sprintf("input: %q", in.Value()), nil
		}},
		{Name: "parse-int", Run: func(st *State) (string, error) {
			s, err := lookup[string](st, "input")
			if err != nil {
				return "", err
			}
			n, err := binding.ParsePipeline(s)
			if err != nil {
				return "", err
			}
			logStage(st, binding.Bind(st.Scope, binding.Let("input", n)))
			return fmt.Sprintf("input: %d", n), nil
		}},
	}
}

// logStage reports the binding a shadow stage produced, with its type.
func logStage[T any](st *State, b binding.Binding[T]) {
	v := b.Value()
	st.Logger.Value("%s = %#v (%T)", b.Name(), v, v)
}
