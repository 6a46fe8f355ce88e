package tour

import (
	"fmt"

	"github.com/saint0x/typetour/pkg/binding"
	"github.com/saint0x/typetour/pkg/record"
	"github.com/saint0x/typetour/pkg/seq"
)

// NonPrimitives goes deeper into fixed sequences and records.
func NonPrimitives() Section {
	steps := []Step{
		{Name: "array-literal", Run: func(st *State) (string, error) {
			binding.Bind(st.Scope, binding.Let("arr", seq.New(10, 20, 30, 40, 50)))
			return indexStep[int]("arr", 1, "arr: %d")(st)
		}},
		{Name: "array-typed", Run: func(st *State) (string, error) {
			binding.Bind(st.Scope, binding.Let("arr_with_type", seq.New[int32](1, 2, 3)))
			return indexStep[int32]("arr_with_type", 1, "arr_with_type: %d")(st)
		}},
		{Name: "array-repeated", Run: func(st *State) (string, error) {
			binding.Bind(st.Scope, binding.Let("arr_repeated", seq.Repeat(0, 5)))
			return indexStep[int]("arr_repeated", 1, "arr_repeated: %d")(st)
		}},
		{Name: "array-first", Run: indexStep[int]("arr", 0, "first: %d")},
		{Name: "array-last", Run: func(st *State) (string, error) {
			arr, err := lookup[seq.Fixed[int]](st, "arr")
			if err != nil {
				return "", err
			}
			last, err := arr.Last()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("last: %d (len %d)", last, arr.Len()), nil
		}},
		{Name: "tuple-destructure", Run: destructureStep(record.NewTriple(42, 6.9, 'R'))},
		{Name: "tuple-index", Run: func(st *State) (string, error) {
			tup, err := lookup[record.Triple[int, float64, rune]](st, "tup")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("tup.0: %d", tup.First), nil
		}},
		{Name: "sum-product", Run: func(st *State) (string, error) {
			sum, product := record.SumProduct(10, 20).Unpack()
			return fmt.Sprintf("calc.0: %d, calc.1: %d", sum, product), nil
		}},
	}

	return Section{Name: "non-primitives", Title: "Arrays, tuples & slices", Steps: steps}
}
