package binding

type entry struct {
	name    string
	value   any
	mutable bool
}

// Scope is a lexical scope. Declarations append, so a name declared twice
// shadows the earlier declaration without removing it. Lookups walk from
// the innermost scope outward.
type Scope struct {
	parent  *Scope
	entries []entry
}

// NewScope creates an empty top-level scope.
func NewScope() *Scope {
	return &Scope{}
}

// Child opens a nested scope. Declarations in the child are invisible to
// the parent once the child is dropped.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s}
}

// Parent returns the enclosing scope, or nil at the top level.
func (s *Scope) Parent() *Scope { return s.parent }

// Depth returns the nesting depth; the top-level scope is 0.
func (s *Scope) Depth() int {
	d := 0
	for p := s.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Declare introduces name in this scope, shadowing any earlier
// declaration of the same name here or in an enclosing scope.
func (s *Scope) Declare(name string, value any) {
	s.entries = append(s.entries, entry{name: name, value: value})
}

// DeclareMut introduces a mutable name in this scope.
func (s *Scope) DeclareMut(name string, value any) {
	s.entries = append(s.entries, entry{name: name, value: value, mutable: true})
}

// Lookup resolves name to its innermost, most recent declaration.
func (s *Scope) Lookup(name string) (any, bool) {
	if e := s.find(name); e != nil {
		return e.value, true
	}
	return nil, false
}

// Assign updates the innermost declaration of name in place. It fails if
// the name is undeclared, immutable, or the new value has a different
// dynamic type.
func (s *Scope) Assign(name string, value any) error {
	e := s.find(name)
	if e == nil {
		return &AssignError{Name: name, Reason: "undeclared"}
	}
	if !e.mutable {
		return &AssignError{Name: name, Reason: "cannot assign twice to immutable binding"}
	}
	if !sameType(e.value, value) {
		return &AssignError{Name: name, Reason: "mismatched types"}
	}
	e.value = value
	return nil
}

// Shadows returns how many times name has been declared in this scope
// alone (not counting enclosing scopes).
func (s *Scope) Shadows(name string) int {
	n := 0
	for _, e := range s.entries {
		if e.name == name {
			n++
		}
	}
	return n
}

func (s *Scope) find(name string) *entry {
	for sc := s; sc != nil; sc = sc.parent {
		for i := len(sc.entries) - 1; i >= 0; i-- {
			if sc.entries[i].name == name {
				return &sc.entries[i]
			}
		}
	}
	return nil
}

// Get resolves name in s and asserts its type.
func Get[T any](s *Scope, name string) Optional[T] {
	v, ok := s.Lookup(name)
	if !ok {
		return None[T]()
	}
	t, ok := v.(T)
	if !ok {
		return None[T]()
	}
	return Some(t)
}

// Bind declares b in s under its own name.
func Bind[T any](s *Scope, b Binding[T]) Binding[T] {
	s.Declare(b.Name(), b.Value())
	return b
}
