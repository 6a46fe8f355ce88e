package tour

import (
	"fmt"

	"github.com/saint0x/typetour/pkg/binding"
)

const (
	pi        float64 = 3.1415
	maxPoints uint32  = 100_000
)

// Variables covers immutable, mutable, typed, shadowed, constant and
// scoped bindings.
func Variables() Section {
	steps := []Step{
		{Name: "immutable", Run: func(st *State) (string, error) {
			x := binding.Bind(st.Scope, binding.Let("x", "Hello"))
			return fmt.Sprintf("Value of x is: %s", x.Value()), nil
		}},
		{Name: "mutable-before", Run: func(st *State) (string, error) {
			x := binding.LetMut("x", "Hello")
			st.Scope.DeclareMut(x.Name(), x.Value())
			return fmt.Sprintf("Before changing: Value of x is: %s", x.Value()), nil
		}},
		{Name: "mutable-after", Run: func(st *State) (string, error) {
			if err := st.Scope.Assign("x", "6"); err != nil {
				return "", err
			}
			x, err := lookup[string](st, "x")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("After changing: Value of x is: %s", x), nil
		}},
		{Name: "explicit-uint32", Run: func(st *State) (string, error) {
			var score uint32 = 65538
			st.Scope.Declare("score", score)
			return fmt.Sprintf("Score = %d", score), nil
		}},
		{Name: "explicit-float32", Run: func(st *State) (string, error) {
			var marks float32 = 23.123
			st.Scope.Declare("marks", marks)
			return fmt.Sprintf("Marks = %v", marks), nil
		}},
		{Name: "shadow-declare", Run: func(st *State) (string, error) {
			st.Scope.Declare("x", 5)
			return "1. x is: 5", nil
		}},
		{Name: "shadow-add", Run: shadowInt("x", "2. Now x is: %d", func(v int) int { return v + 1 })},
		{Name: "shadow-double", Run: shadowInt("x", "3. Now x is: %d", func(v int) int { return v * 2 })},
		{Name: "shadow-string", Run: func(st *State) (string, error) {
			spaces := binding.Bind(st.Scope, binding.Let("spaces", "   "))
			return fmt.Sprintf("spaces: %s", spaces.Value()), nil
		}},
		{Name: "shadow-retype", Run: func(st *State) (string, error) {
			s, err := lookup[string](st, "spaces")
			if err != nil {
				return "", err
			}
			spaces := binding.Shadow(binding.Let("spaces", s), func(v string) int { return len(v) })
			binding.Bind(st.Scope, spaces)
			return fmt.Sprintf("spaces: %d", spaces.Value()), nil
		}},
		{Name: "const-float", Run: func(st *State) (string, error) {
			return fmt.Sprintf("PI: %v", pi), nil
		}},
		{Name: "const-uint32", Run: func(st *State) (string, error) {
			return fmt.Sprintf("MAX_POINTS: %d", maxPoints), nil
		}},
		{Name: "scope-inner", Run: func(st *State) (string, error) {
			st.Scope.Declare("n", 10)
			inner := st.Scope.Child()
			inner.Declare("n", 20)
			n, err := lookup[int](&State{Scope: inner}, "n")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("inside scope: %d", n), nil
		}},
		{Name: "scope-outer", Run: func(st *State) (string, error) {
			n, err := lookup[int](st, "n")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("outside scope: %d", n), nil
		}},
	}

	steps = append(steps, parseSteps("  42 ")...)

	return Section{Name: "variables", Title: "Variables & bindings", Steps: steps}
}

// shadowInt re-declares an int name with fn applied to its current value.
func shadowInt(name, format string, fn func(int) int) func(*State) (string, error) {
	return func(st *State) (string, error) {
		v, err := lookup[int](st, name)
		if err != nil {
			return "", err
		}
		b := binding.Bind(st.Scope, binding.Shadow(binding.Let(name, v), fn))
		return fmt.Sprintf(format, b.Value()), nil
	}
}
