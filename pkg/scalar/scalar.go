// Package scalar holds explicit conversions and overflow-aware arithmetic
// for the built-in numeric and character types.
package scalar

import (
	"unicode/utf8"

	"github.com/saint0x/typetour/pkg/binding"
)

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer type.
type Integer interface {
	Signed | Unsigned
}

// Widen converts v to To without checking the range. Callers pick a To
// wide enough for every value of From; use Narrow when it may not be.
func Widen[From, To Integer](v From) To {
	return To(v)
}

// Narrow converts v to To, or returns None if the value does not survive
// the round trip.
func Narrow[From, To Integer](v From) binding.Optional[To] {
	t := To(v)
	if From(t) != v || (v < 0) != (t < 0) {
		return binding.None[To]()
	}
	return binding.Some(t)
}

// WrappingAdd adds with two's complement wraparound.
func WrappingAdd[T Integer](a, b T) T {
	return a + b
}

// CheckedAdd adds, returning None on overflow.
func CheckedAdd[T Integer](a, b T) binding.Optional[T] {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return binding.None[T]()
	}
	return binding.Some(s)
}

// Float32To64 widens a float32. The result carries the float32's binary
// rounding, e.g. 2.5 stays 2.5 but 0.1 does not.
func Float32To64(f float32) float64 {
	return float64(f)
}

// RuneWidth returns how many bytes r takes in UTF-8, or -1 if r is not a
// Unicode scalar value.
func RuneWidth(r rune) int {
	return utf8.RuneLen(r)
}

// IsScalarValue reports whether r is a valid Unicode scalar value (not a
// surrogate, not above U+10FFFF).
func IsScalarValue(r rune) bool {
	return utf8.ValidRune(r)
}
