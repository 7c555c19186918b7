package analyzer

import (
	"fmt"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/types"
)

// The analyzer's error taxonomy: one concrete type per failure kind, each
// carrying the context fields a diagnostic needs and implementing
// errors.Located so the CLI can render it with source context.

// VariableAlreadyDefined is returned by Let when name is already bound in
// the current environment.
type VariableAlreadyDefined struct {
	Name string
	Line int
}

func (e *VariableAlreadyDefined) Error() string {
	return fmt.Sprintf("variable %q is already defined", e.Name)
}
func (e *VariableAlreadyDefined) ErrorLine() int { return e.Line }

// UndefinedVariable is returned by Assignment and Identifier evaluation
// when name has no binding.
type UndefinedVariable struct {
	Name string
	Line int
}

func (e *UndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}
func (e *UndefinedVariable) ErrorLine() int { return e.Line }

// UndefinedFunction is returned when a FunctionCall names anything not in
// the built-in registry, including a FunctionDeclaration that was parsed
// but never made executable.
type UndefinedFunction struct {
	Name string
	Line int
}

func (e *UndefinedFunction) Error() string {
	return fmt.Sprintf("undefined function %q", e.Name)
}
func (e *UndefinedFunction) ErrorLine() int { return e.Line }

// ArgumentCountMismatch is returned when a call's argument count does not
// match the callee's registered arity.
type ArgumentCountMismatch struct {
	Name string
	Want int
	Got  int
	Line int
}

func (e *ArgumentCountMismatch) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Name, e.Want, e.Got)
}
func (e *ArgumentCountMismatch) ErrorLine() int { return e.Line }

// ArgumentTypeMismatch is returned when a call's Nth argument does not
// match the callee's registered parameter type.
type ArgumentTypeMismatch struct {
	Name  string
	Index int
	Want  types.Type
	Got   types.Type
	Line  int
}

func (e *ArgumentTypeMismatch) Error() string {
	return fmt.Sprintf("%s argument %d: expected %s, got %s", e.Name, e.Index+1, e.Want, e.Got)
}
func (e *ArgumentTypeMismatch) ErrorLine() int { return e.Line }

// IllegalOperation is returned when an operator is applied to operand
// types it is not defined over.
type IllegalOperation struct {
	Op   ast.Op
	Line int
}

func (e *IllegalOperation) Error() string {
	return fmt.Sprintf("illegal operation %s", e.Op)
}
func (e *IllegalOperation) ErrorLine() int { return e.Line }

// NonBooleanCondition is returned when an If or For condition evaluates to
// a non-Bool type.
type NonBooleanCondition struct {
	Got  types.Type
	Line int
}

func (e *NonBooleanCondition) Error() string {
	return fmt.Sprintf("condition must be Bool, got %s", e.Got)
}
func (e *NonBooleanCondition) ErrorLine() int { return e.Line }

// MismatchedTypes is returned by array literal element checking and by
// both assignment paths (plain Assignment and the Assign operator) when
// the right-hand side's type does not match the left-hand side's declared
// or inferred type.
type MismatchedTypes struct {
	Want types.Type
	Got  types.Type
	Line int
}

func (e *MismatchedTypes) Error() string {
	return fmt.Sprintf("mismatched types: expected %s, got %s", e.Want, e.Got)
}
func (e *MismatchedTypes) ErrorLine() int { return e.Line }
