package binding

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("invalid integer literal")

// ParseError reports text that is not a valid integer literal after
// trimming.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse %q: %v", e.Input, ErrParse)
	}
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// AssignError reports a rejected assignment through a Scope.
type AssignError struct {
	Name   string
	Reason string
}

func (e *AssignError) Error() string {
	return fmt.Sprintf("assign %s: %s", e.Name, e.Reason)
}

func sameType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
