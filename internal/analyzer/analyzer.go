// Package analyzer implements the combined type-checker and tree-walking
// evaluator. It walks the statement list once, producing a typed value
// for every expression and mutating a shared Environment as a side
// effect.
package analyzer

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/builtins"
	"github.com/quill-lang/quill/internal/environment"
)

// Analyzer carries the statement list's current environment and the IO
// streams the IO-module built-ins use. It has no other mutable state:
// there is nothing to type-check ahead of time, since checking and
// evaluating a statement is the same walk.
type Analyzer struct {
	Env      *environment.Environment
	IO       *builtins.IO
	Registry *builtins.Registry
}

// New creates an Analyzer over a fresh environment.
func New(io *builtins.IO) *Analyzer {
	return &Analyzer{
		Env:      environment.New(),
		IO:       io,
		Registry: builtins.Default,
	}
}

// sub creates a new Analyzer value sharing this one's Environment, IO, and
// Registry, the sub-analyzer If and For spawn for their bodies. Because
// Environment is a pointer, the sub shares every binding with its parent;
// nothing is copied but the struct wrapping it.
func (a *Analyzer) sub() *Analyzer {
	return &Analyzer{Env: a.Env, IO: a.IO, Registry: a.Registry}
}

// Run executes every top-level statement in order, stopping at the first
// error: all errors are fatal at first occurrence.
func Run(program *ast.Program, io *builtins.IO) error {
	return New(io).execStatements(program.Statements)
}

func (a *Analyzer) execStatements(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := a.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
