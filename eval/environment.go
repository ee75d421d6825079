package eval

import (
	"github.com/ahrtr/gocontainer/set"
)

// Environment is a chained scope of bindings. The validator keeps one of
// types, the executor one of values.
type Environment[T any] struct {
	vars   map[string]T
	order  []string // names in first-declaration order
	parent *Environment[T]
}

// NewEnvironment creates a new environment with no parent (global scope)
func NewEnvironment[T any]() *Environment[T] {
	return &Environment[T]{vars: make(map[string]T)}
}

// NewNestedEnvironment creates a new environment with a parent scope
func NewNestedEnvironment[T any](parent *Environment[T]) *Environment[T] {
	return &Environment[T]{
		vars:   make(map[string]T),
		parent: parent,
	}
}

// Parent returns the enclosing scope, or nil for the global scope
func (e *Environment[T]) Parent() *Environment[T] {
	return e.parent
}

// Get looks up a variable by name
// Searches current scope, then parent scopes
func (e *Environment[T]) Get(name string) (T, bool) {
	for env := e; env != nil; env = env.parent {
		if val, ok := env.vars[name]; ok {
			return val, true
		}
	}
	var zero T
	return zero, false
}

// Set binds name in the current scope only. Rebinding keeps the name's
// original position in Keys.
func (e *Environment[T]) Set(name string, value T) {
	if _, ok := e.vars[name]; !ok {
		e.order = append(e.order, name)
	}
	e.vars[name] = value
}

// Keys lists every visible name, innermost scope first. A name shadowed by
// an inner scope is listed once, where the inner scope puts it.
func (e *Environment[T]) Keys() []string {
	seen := set.New()
	var keys []string
	for env := e; env != nil; env = env.parent {
		for _, name := range env.order {
			if seen.Contains(name) {
				continue
			}
			seen.Add(name)
			keys = append(keys, name)
		}
	}
	return keys
}
