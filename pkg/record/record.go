// Package record provides small fixed-arity groups of values of mixed
// types.
package record

import "fmt"

// Pair groups two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns the fields in order.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple groups three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple builds a Triple.
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Unpack returns the fields in order.
func (t Triple[A, B, C]) Unpack() (A, B, C) { return t.First, t.Second, t.Third }

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// SumProduct returns x+y and x*y together.
func SumProduct(x, y int) Pair[int, int] {
	return NewPair(x+y, x*y)
}

// AverageOfTriple returns the mean of a, b and c. The sum is converted
// before dividing so nothing is truncated.
func AverageOfTriple(a, b, c int) float64 {
	return float64(a+b+c) / 3.0
}

// Average is AverageOfTriple over a Triple of ints.
func Average(t Triple[int, int, int]) float64 {
	return AverageOfTriple(t.Unpack())
}
