// Package binding models named values: immutable bindings, mutable
// bindings, shadowing and lexical scopes.
//
// An immutable Binding has no setter, so assigning to it is rejected by
// the compiler. A Mutable only accepts values of the type it was declared
// with. Shadowing never mutates: it produces a new Binding with the same
// name, possibly of a different type, and leaves the old one untouched.
package binding

import "fmt"

// Binding is an immutable name-to-value association.
type Binding[T any] struct {
	name  string
	value T
}

// Let declares an immutable binding.
func Let[T any](name string, value T) Binding[T] {
	return Binding[T]{name: name, value: value}
}

// Name returns the bound name.
func (b Binding[T]) Name() string { return b.name }

// Value returns the bound value.
func (b Binding[T]) Value() T { return b.value }

// Mutable reports whether the binding can be assigned to.
func (b Binding[T]) Mutable() bool { return false }

func (b Binding[T]) String() string {
	return fmt.Sprintf("%s = %v", b.name, b.value)
}

// Mutable is a name-to-value association that can be reassigned with a
// value of the same type.
type Mutable[T any] struct {
	name  string
	value T
}

// LetMut declares a mutable binding.
func LetMut[T any](name string, value T) *Mutable[T] {
	return &Mutable[T]{name: name, value: value}
}

// Name returns the bound name.
func (m *Mutable[T]) Name() string { return m.name }

// Value returns the current value.
func (m *Mutable[T]) Value() T { return m.value }

// Mutable reports whether the binding can be assigned to.
func (m *Mutable[T]) Mutable() bool { return true }

// Set assigns a new value in place.
func (m *Mutable[T]) Set(value T) { m.value = value }

// Freeze returns an immutable snapshot of the current value. Later calls
// to Set do not affect the snapshot.
func (m *Mutable[T]) Freeze() Binding[T] {
	return Binding[T]{name: m.name, value: m.value}
}

func (m *Mutable[T]) String() string {
	return fmt.Sprintf("mut %s = %v", m.name, m.value)
}

// Shadow re-declares b's name with fn applied to its value. The result
// may have a different type; b itself is left as it was.
func Shadow[T, U any](b Binding[T], fn func(T) U) Binding[U] {
	return Binding[U]{name: b.name, value: fn(b.value)}
}

// ShadowErr is Shadow for transforms that can fail. On error no new
// binding is produced.
func ShadowErr[T, U any](b Binding[T], fn func(T) (U, error)) (Binding[U], error) {
	v, err := fn(b.value)
	if err != nil {
		return Binding[U]{}, err
	}
	return Binding[U]{name: b.name, value: v}, nil
}
