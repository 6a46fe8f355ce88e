// Package seq provides fixed-length sequences and read-only views into
// them. Go arrays carry their length in the type but cannot be generic
// over it, so Fixed fixes its length when it is built instead and never
// exposes a way to change it.
package seq

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an access outside [0, Len).
type IndexError struct {
	Index  int
	Length int
	End    int // set for range accesses
	Range  bool
}

func (e *IndexError) Error() string {
	if e.Range {
		return fmt.Sprintf("range [%d:%d] out of bounds for length %d", e.Index, e.End, e.Length)
	}
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// Fixed is an ordered, fixed-length sequence of T.
type Fixed[T any] struct {
	elems []T
}

// New builds a sequence holding a copy of elems.
func New[T any](elems ...T) Fixed[T] {
	cp := make([]T, len(elems))
	copy(cp, elems)
	return Fixed[T]{elems: cp}
}

// FromArray builds a sequence from the elements of a slice taken over an
// array, e.g. FromArray(arr[:]).
func FromArray[T any](arr []T) Fixed[T] {
	return New(arr...)
}

// Repeat builds a sequence of n copies of v. It panics if n is negative.
func Repeat[T any](v T, n int) Fixed[T] {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	elems := make([]T, n)
	for i := range elems {
		elems[i] = v
	}
	return Fixed[T]{elems: elems}
}

// Len returns the number of elements.
func (f Fixed[T]) Len() int { return len(f.elems) }

// At returns the element at i.
func (f Fixed[T]) At(i int) (T, error) {
	if i < 0 || i >= len(f.elems) {
		var zero T
		return zero, &IndexError{Index: i, Length: len(f.elems)}
	}
	return f.elems[i], nil
}

// MustAt is At for callers that treat a bad index as a programming
// error. It panics with an *IndexError.
func (f Fixed[T]) MustAt(i int) T {
	v, err := f.At(i)
	if err != nil {
		panic(err)
	}
	return v
}

// First returns the first element.
func (f Fixed[T]) First() (T, error) { return f.At(0) }

// Last returns the last element.
func (f Fixed[T]) Last() (T, error) { return f.At(len(f.elems) - 1) }

// Slice returns a view over [start, end).
func (f Fixed[T]) Slice(start, end int) (View[T], error) {
	if start < 0 || start > end || end > len(f.elems) {
		return View[T]{}, &IndexError{Index: start, End: end, Length: len(f.elems), Range: true}
	}
	return View[T]{elems: f.elems[start:end:end], offset: start}, nil
}

// SliceFrom returns a view over [start, Len).
func (f Fixed[T]) SliceFrom(start int) (View[T], error) {
	return f.Slice(start, len(f.elems))
}

// Values returns a copy of the elements.
func (f Fixed[T]) Values() []T {
	cp := make([]T, len(f.elems))
	copy(cp, f.elems)
	return cp
}

func (f Fixed[T]) String() string { return fmt.Sprint(f.elems) }

// View is a read-only window onto part of a Fixed. It shares storage with
// the sequence it was taken from.
type View[T any] struct {
	elems  []T
	offset int
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return len(v.elems) }

// Offset returns the index in the parent sequence where the view starts.
func (v View[T]) Offset() int { return v.offset }

// At returns the element at k, i.e. parent[Offset()+k].
func (v View[T]) At(k int) (T, error) {
	if k < 0 || k >= len(v.elems) {
		var zero T
		return zero, &IndexError{Index: k, Length: len(v.elems)}
	}
	return v.elems[k], nil
}

// Values returns a copy of the viewed elements.
func (v View[T]) Values() []T {
	cp := make([]T, len(v.elems))
	copy(cp, v.elems)
	return cp
}

func (v View[T]) String() string { return fmt.Sprint(v.elems) }
