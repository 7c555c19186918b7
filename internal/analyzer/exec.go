package analyzer

import (
	"fmt"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/types"
	"github.com/quill-lang/quill/internal/value"
)

// exec dispatches a single statement to its handler, mirroring the
// parser's per-construct dispatch.
func (a *Analyzer) exec(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return a.execLet(s)
	case *ast.AssignmentStatement:
		return a.execAssignment(s)
	case *ast.ExpressionStatement:
		return a.execExpressionStatement(s)
	case *ast.IfStatement:
		return a.execIf(s)
	case *ast.ForStatement:
		return a.execFor(s)
	case *ast.FunctionDeclaration:
		// Declaring a function is a no-op; calling one is a hard error.
		// See UndefinedFunction in eval.go.
		return nil
	default:
		return fmt.Errorf("analyzer: unsupported statement %T", stmt)
	}
}

// execLet: fail VariableAlreadyDefined if name is bound, else evaluate the
// right-hand side and insert a fresh binding with its inferred type.
func (a *Analyzer) execLet(s *ast.LetStatement) error {
	if a.Env.Has(s.Name) {
		return &VariableAlreadyDefined{Name: s.Name, Line: s.Line()}
	}
	val, typ, err := a.eval(s.Value)
	if err != nil {
		return err
	}
	a.Env.Define(s.Name, val, typ)
	return nil
}

// execAssignment: fail UndefinedVariable if name is unbound, then
// type-check the right-hand side against the variable's declared type,
// the same rule the Assign operator enforces inside an expression.
func (a *Analyzer) execAssignment(s *ast.AssignmentStatement) error {
	binding, ok := a.Env.Lookup(s.Name)
	if !ok {
		return &UndefinedVariable{Name: s.Name, Line: s.Line()}
	}
	val, typ, err := a.eval(s.Value)
	if err != nil {
		return err
	}
	if !typ.Equals(binding.DeclaredType) {
		return &MismatchedTypes{Want: binding.DeclaredType, Got: typ, Line: s.Line()}
	}
	a.Env.Set(s.Name, val)
	return nil
}

// execExpressionStatement evaluates an expression purely for effect
// (typically a built-in call) and discards the result.
func (a *Analyzer) execExpressionStatement(s *ast.ExpressionStatement) error {
	_, _, err := a.eval(s.Expr)
	return err
}

// execIf: evaluate cond, requiring Bool; on true, run body through a
// sub-analyzer sharing this one's environment.
func (a *Analyzer) execIf(s *ast.IfStatement) error {
	val, typ, err := a.eval(s.Cond)
	if err != nil {
		return err
	}
	if !typ.Equals(types.BoolType) {
		return &NonBooleanCondition{Got: typ, Line: s.Line()}
	}
	if val.(value.Bool).Val {
		return a.sub().execStatements(s.Body)
	}
	return nil
}

// execFor: evaluate init once, then loop while cond is true, running body
// and step after each iteration. cond is re-checked before every
// iteration, including the first.
func (a *Analyzer) execFor(s *ast.ForStatement) error {
	if err := a.exec(s.Init); err != nil {
		return err
	}
	for {
		val, typ, err := a.eval(s.Cond)
		if err != nil {
			return err
		}
		if !typ.Equals(types.BoolType) {
			return &NonBooleanCondition{Got: typ, Line: s.Line()}
		}
		if !val.(value.Bool).Val {
			return nil
		}
		if err := a.sub().execStatements(s.Body); err != nil {
			return err
		}
		if err := a.exec(s.Step); err != nil {
			return err
		}
	}
}
