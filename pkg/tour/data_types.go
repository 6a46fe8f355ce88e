package tour

import (
	"fmt"

	"github.com/saint0x/typetour/pkg/binding"
	"github.com/saint0x/typetour/pkg/record"
	"github.com/saint0x/typetour/pkg/scalar"
	"github.com/saint0x/typetour/pkg/seq"
)

// DataTypes covers scalar types, records, fixed sequences and views.
func DataTypes() Section {
	steps := []Step{
		{Name: "int-signed", Run: func(st *State) (string, error) {
			var x int32 = -42
			return fmt.Sprintf("value of x : %d", x), nil
		}},
		{Name: "int-unsigned", Run: func(st *State) (string, error) {
			var y uint64 = 999_999
			return fmt.Sprintf("value of y : %d", y), nil
		}},
		{Name: "int-widen", Run: func(st *State) (string, error) {
			var a uint8 = 10
			b := scalar.Widen[uint8, uint16](a)
			return fmt.Sprintf("value of b : %d (%T from %T)", b, b, a), nil
		}},
		{Name: "overflow-wrapping", Run: func(st *State) (string, error) {
			var x uint8 = 255
			z := scalar.WrappingAdd(x, 1)
			return fmt.Sprintf("value of z : %d", z), nil
		}},
		{Name: "overflow-checked", Run: func(st *State) (string, error) {
			var x uint8 = 255
			return fmt.Sprintf("checked %d + 1 : %v", x, scalar.CheckedAdd(x, 1)), nil
		}},
		{Name: "float-default", Run: func(st *State) (string, error) {
			x := 3.14
			return fmt.Sprintf("value of x : %v", x), nil
		}},
		{Name: "float-widen", Run: func(st *State) (string, error) {
			var y float32 = 2.5
			return fmt.Sprintf("value of z : %v", scalar.Float32To64(y)), nil
		}},
		{Name: "bool", Run: func(st *State) (string, error) {
			isReady := true
			f := false
			if isReady && !f {
				return fmt.Sprintf("Let's go! f is %v", f), nil
			}
			return "not ready", nil
		}},
		{Name: "char-heart", Run: runeStep("heart", '♥')},
		{Name: "char-letter", Run: runeStep("letter", 'A')},
		{Name: "char-emoji", Run: runeStep("emoji", '🦀')},
		{Name: "tuple-destructure", Run: destructureStep(record.NewTriple(500, 6.4, 'R'))},
		{Name: "tuple-index", Run: func(st *State) (string, error) {
			tup, err := lookup[record.Triple[int, float64, rune]](st, "tup")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("value of 1: %v", tup.Second), nil
		}},
		{Name: "array-index", Run: func(st *State) (string, error) {
			arr := binding.Bind(st.Scope, binding.Let("arr", seq.New[int64](1, 2, 3, 4, 5)))
			v, err := arr.Value().At(2)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("value of 3: %d", v), nil
		}},
		{Name: "array-last", Run: indexStep[int64]("arr", 4, "value of ans: %d")},
		{Name: "slice-array", Run: func(st *State) (string, error) {
			binding.Bind(st.Scope, binding.Let("arr", seq.New(1, 2, 3, 4, 5)))
			return indexStep[int]("arr", 0, "arr[0]: %d")(st)
		}},
		{Name: "slice-array-1", Run: indexStep[int]("arr", 1, "arr[1]: %d")},
		{Name: "slice-array-2", Run: indexStep[int]("arr", 2, "arr[2]: %d")},
		{Name: "slice", Run: func(st *State) (string, error) {
			arr, err := lookup[seq.Fixed[int]](st, "arr")
			if err != nil {
				return "", err
			}
			view, err := arr.Slice(1, 3)
			if err != nil {
				return "", err
			}
			binding.Bind(st.Scope, binding.Let("slice", view))
			return fmt.Sprintf("slice: %v", view), nil
		}},
		{Name: "slice-0", Run: viewStep[int]("slice", 0)},
		{Name: "slice-1", Run: viewStep[int]("slice", 1)},
		{Name: "challenge-tuple", Run: func(st *State) (string, error) {
			tup := binding.Bind(st.Scope, binding.Let("challenge", record.NewTriple(10, 28, 36)))
			return fmt.Sprintf("tup: %v", tup.Value()), nil
		}},
		{Name: "challenge-average", Run: func(st *State) (string, error) {
			tup, err := lookup[record.Triple[int, int, int]](st, "challenge")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("avg: %v", record.Average(tup)), nil
		}},
		{Name: "slice-from", Run: func(st *State) (string, error) {
			ar := binding.Bind(st.Scope, binding.Let("ar", seq.New[int32](1, 2, 3)))
			tail, err := ar.Value().SliceFrom(1)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("ar[1..]: %v", tail), nil
		}},
	}

	return Section{Name: "data-types", Title: "Scalar & compound types", Steps: steps}
}

func runeStep(name string, r rune) func(*State) (string, error) {
	return func(st *State) (string, error) {
		if !scalar.IsScalarValue(r) {
			return "", fmt.Errorf("%U is not a Unicode scalar value", r)
		}
		return fmt.Sprintf("value of %s : %c (%d bytes)", name, r, scalar.RuneWidth(r)), nil
	}
}

// destructureStep binds the triple as "tup" and its fields as x, y, z.
func destructureStep[A, B, C any](tup record.Triple[A, B, C]) func(*State) (string, error) {
	return func(st *State) (string, error) {
		binding.Bind(st.Scope, binding.Let("tup", tup))
		x, y, z := tup.Unpack()
		st.Scope.Declare("x", x)
		st.Scope.Declare("y", y)
		st.Scope.Declare("z", z)
		return fmt.Sprintf("x: %v, y: %v, z: %v", x, y, display(z)), nil
	}
}

// indexStep reads element i of the fixed sequence bound to name.
func indexStep[T any](name string, i int, format string) func(*State) (string, error) {
	return func(st *State) (string, error) {
		arr, err := lookup[seq.Fixed[T]](st, name)
		if err != nil {
			return "", err
		}
		v, err := arr.At(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(format, v), nil
	}
}

func viewStep[T any](name string, k int) func(*State) (string, error) {
	return func(st *State) (string, error) {
		view, err := lookup[seq.View[T]](st, name)
		if err != nil {
			return "", err
		}
		v, err := view.At(k)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%d]: %v", name, k, v), nil
	}
}

// display renders runes as characters rather than code points.
func display(v any) any {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return v
}
