// Package environment implements the shared variable bindings the analyzer
// reads and mutates while walking the AST.
//
// Unlike a conventional lexically-scoped interpreter, this language has a
// single environment per run: if/for bodies do not push a child scope, they
// share the enclosing one by reference. A Let executed inside a loop body
// is therefore still visible after the loop exits. Environment is a thin
// wrapper around a map rather than a scope chain, since there is no parent
// to walk.
package environment

import (
	"github.com/quill-lang/quill/internal/types"
	"github.com/quill-lang/quill/internal/value"
)

// Variable is one binding: its current value together with the type it was
// declared with. Assignment may change Value but must never change
// DeclaredType.
type Variable struct {
	Name         string
	Value        value.Value
	DeclaredType types.Type
}

// Environment is the single mutable variable table for one interpreter run.
// It is always passed and shared by reference (a pointer) so that a nested
// sub-analyzer mutating it is observed by its caller immediately.
type Environment struct {
	vars map[string]*Variable
}

// New creates an empty Environment, ready for the top-level analyzer of one
// interpreter run. It is never nested or copied; every If/For body receives
// the same *Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]*Variable)}
}

// Has reports whether name is already bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Lookup returns the binding for name and true, or nil and false if it is
// unbound. The returned *Variable aliases the environment's own storage;
// callers must not retain it across a later Define for the same name.
func (e *Environment) Lookup(name string) (*Variable, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Define creates a brand-new binding for name, fixing its declared type for
// the lifetime of the environment. Callers (the analyzer's Let handler)
// are responsible for rejecting a redefinition before calling Define.
func (e *Environment) Define(name string, v value.Value, declaredType types.Type) {
	e.vars[name] = &Variable{Name: name, Value: v, DeclaredType: declaredType}
}

// Set overwrites the value of an already-bound name in place, without
// touching its declared type. Callers are responsible for verifying name
// is already bound and that the new value's type matches DeclaredType;
// Assignment enforces both before calling Set.
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name].Value = v
}
