// Package tour runs ordered steps that bind, shadow, index and slice
// values, printing one line per step.
package tour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saint0x/typetour/pkg/binding"
	"github.com/saint0x/typetour/pkg/log"
)

// ErrUnbound is returned when a step reads a name no earlier step bound.
var ErrUnbound = errors.New("name not bound")

// State is shared by the steps of one section. Steps communicate only
// through Scope.
type State struct {
	Scope  *binding.Scope
	Logger *log.Logger
}

// Step computes one line of output. A returned error stops the run.
type Step struct {
	Name string
	Run  func(st *State) (string, error)
}

// Section is an ordered group of steps sharing one scope.
type Section struct {
	Name  string
	Title string
	Steps []Step
}

// Tour is an ordered list of sections.
type Tour struct {
	Sections []Section
}

// Default returns the full built-in tour.
func Default() *Tour {
	return &Tour{Sections: []Section{
		Variables(),
		DataTypes(),
		NonPrimitives(),
	}}
}

// Select returns a tour containing only the named sections, in the order
// given. With no names it returns t.
func (t *Tour) Select(names ...string) (*Tour, error) {
	if len(names) == 0 {
		return t, nil
	}

	selected := &Tour{}
	for _, name := range names {
		s, ok := t.Find(name)
		if !ok {
			return nil, fmt.Errorf("unknown section %q (have: %s)", name, strings.Join(t.Names(), ", "))
		}
		selected.Sections = append(selected.Sections, s)
	}
	return selected, nil
}

// Find looks up a section by name.
func (t *Tour) Find(name string) (Section, bool) {
	for _, s := range t.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Names lists section names in order.
func (t *Tour) Names() []string {
	names := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		names = append(names, s.Name)
	}
	return names
}

// StepCount returns the total number of steps.
func (t *Tour) StepCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Steps)
	}
	return n
}

// lookup reads name from the step scope with the expected type.
func lookup[T any](st *State, name string) (T, error) {
	v, ok := binding.Get[T](st.Scope, name).Get()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrUnbound)
	}
	return v, nil
}
