package analyzer

import (
	"fmt"
	"strings"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/builtins"
	"github.com/quill-lang/quill/internal/types"
	"github.com/quill-lang/quill/internal/value"
)

// eval evaluates an expression to a (value, type) pair, or an error drawn
// from the taxonomy in errors.go.
func (a *Analyzer) eval(expr ast.Expression) (value.Value, types.Type, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return a.evalNumber(e)
	case *ast.StringLiteral:
		return value.String{Val: e.Value}, types.StringType, nil
	case *ast.BooleanLiteral:
		return value.Bool{Val: e.Value}, types.BoolType, nil
	case *ast.Identifier:
		return a.evalIdentifier(e)
	case *ast.ArrayLiteral:
		return a.evalArrayLiteral(e)
	case *ast.UnaryOp:
		return a.evalUnaryOp(e)
	case *ast.BinOp:
		return a.evalBinOp(e)
	case *ast.FunctionCall:
		return a.evalFunctionCall(e)
	default:
		return nil, types.Type{}, fmt.Errorf("analyzer: unsupported expression %T", expr)
	}
}

// evalNumber: a literal containing '.' is a Decimal, otherwise an Integer.
func (a *Analyzer) evalNumber(e *ast.NumberLiteral) (value.Value, types.Type, error) {
	if strings.Contains(e.Text, ".") {
		d, err := value.ParseDecimal(e.Text)
		if err != nil {
			return nil, types.Type{}, err
		}
		return d, types.DecimalType, nil
	}
	i, err := value.ParseInteger(e.Text)
	if err != nil {
		return nil, types.Type{}, err
	}
	return i, types.IntegerType, nil
}

func (a *Analyzer) evalIdentifier(e *ast.Identifier) (value.Value, types.Type, error) {
	binding, ok := a.Env.Lookup(e.Name)
	if !ok {
		return nil, types.Type{}, &UndefinedVariable{Name: e.Name, Line: e.Line()}
	}
	return binding.Value, binding.DeclaredType, nil
}

// evalArrayLiteral requires every element to share one type.
func (a *Analyzer) evalArrayLiteral(e *ast.ArrayLiteral) (value.Value, types.Type, error) {
	if len(e.Elements) == 0 {
		return value.Array{Elem: types.VoidType}, types.ArrayOf(types.VoidType), nil
	}
	elems := make([]value.Value, len(e.Elements))
	var elemType types.Type
	for i, elExpr := range e.Elements {
		v, t, err := a.eval(elExpr)
		if err != nil {
			return nil, types.Type{}, err
		}
		if i == 0 {
			elemType = t
		} else if !t.Equals(elemType) {
			return nil, types.Type{}, &MismatchedTypes{Want: elemType, Got: t, Line: e.Line()}
		}
		elems[i] = v
	}
	return value.Array{Elem: elemType, Elements: elems}, types.ArrayOf(elemType), nil
}

// evalUnaryOp: only Subtract over Integer is defined; everything else
// (including unary Add, which the parser accepts syntactically) is
// IllegalOperation.
func (a *Analyzer) evalUnaryOp(e *ast.UnaryOp) (value.Value, types.Type, error) {
	operand, typ, err := a.eval(e.Operand)
	if err != nil {
		return nil, types.Type{}, err
	}
	if e.Op == ast.Subtract && typ.Equals(types.IntegerType) {
		i := operand.(value.Integer)
		return value.Integer{Val: -i.Val}, types.IntegerType, nil
	}
	return nil, types.Type{}, &IllegalOperation{Op: e.Op, Line: e.Line()}
}

// evalBinOp dispatches Assign separately (it mutates the environment);
// every other operator is a pure function of its two evaluated operands.
func (a *Analyzer) evalBinOp(e *ast.BinOp) (value.Value, types.Type, error) {
	if e.Op == ast.Assign {
		return a.evalAssignOp(e)
	}

	left, leftType, err := a.eval(e.Left)
	if err != nil {
		return nil, types.Type{}, err
	}
	right, rightType, err := a.eval(e.Right)
	if err != nil {
		return nil, types.Type{}, err
	}

	switch e.Op {
	case ast.Add:
		return evalAdd(left, leftType, right, rightType, e.Line())
	case ast.Subtract:
		return evalArithmetic(e.Op, left, leftType, right, rightType, e.Line())
	case ast.Multiply:
		return evalArithmetic(e.Op, left, leftType, right, rightType, e.Line())
	case ast.Divide:
		return evalDivide(left, leftType, right, rightType, e.Line())
	case ast.LessThan, ast.LessThanEqualTo, ast.GreaterThan, ast.GreaterThanEqualTo, ast.Equals:
		return evalComparison(e.Op, left, leftType, right, rightType, e.Line())
	default:
		return nil, types.Type{}, &IllegalOperation{Op: e.Op, Line: e.Line()}
	}
}

// evalAssignOp implements the "assign-through-expression" path: it
// type-checks the right-hand side against the variable's declared type,
// the same rule execAssignment applies to plain assignment statements.
func (a *Analyzer) evalAssignOp(e *ast.BinOp) (value.Value, types.Type, error) {
	ident, ok := e.Left.(*ast.Identifier)
	if !ok {
		return nil, types.Type{}, &IllegalOperation{Op: ast.Assign, Line: e.Line()}
	}
	binding, ok := a.Env.Lookup(ident.Name)
	if !ok {
		return nil, types.Type{}, &UndefinedVariable{Name: ident.Name, Line: e.Line()}
	}
	val, typ, err := a.eval(e.Right)
	if err != nil {
		return nil, types.Type{}, err
	}
	if !typ.Equals(binding.DeclaredType) {
		return nil, types.Type{}, &MismatchedTypes{Want: binding.DeclaredType, Got: typ, Line: e.Line()}
	}
	a.Env.Set(ident.Name, val)
	return val, binding.DeclaredType, nil
}

func evalAdd(left value.Value, leftType types.Type, right value.Value, rightType types.Type, line int) (value.Value, types.Type, error) {
	switch {
	case leftType.Equals(types.IntegerType) && rightType.Equals(types.IntegerType):
		return value.Integer{Val: left.(value.Integer).Val + right.(value.Integer).Val}, types.IntegerType, nil
	case leftType.Equals(types.DecimalType) && rightType.Equals(types.DecimalType):
		return value.Decimal{Val: left.(value.Decimal).Val + right.(value.Decimal).Val}, types.DecimalType, nil
	case leftType.Equals(types.StringType) && rightType.Equals(types.StringType):
		return value.String{Val: left.(value.String).Val + right.(value.String).Val}, types.StringType, nil
	default:
		return nil, types.Type{}, &IllegalOperation{Op: ast.Add, Line: line}
	}
}

// evalArithmetic handles Subtract and Multiply, which share one operand
// rule (Integer,Integer or Decimal,Decimal).
func evalArithmetic(op ast.Op, left value.Value, leftType types.Type, right value.Value, rightType types.Type, line int) (value.Value, types.Type, error) {
	switch {
	case leftType.Equals(types.IntegerType) && rightType.Equals(types.IntegerType):
		a, b := left.(value.Integer).Val, right.(value.Integer).Val
		if op == ast.Subtract {
			return value.Integer{Val: a - b}, types.IntegerType, nil
		}
		return value.Integer{Val: a * b}, types.IntegerType, nil
	case leftType.Equals(types.DecimalType) && rightType.Equals(types.DecimalType):
		a, b := left.(value.Decimal).Val, right.(value.Decimal).Val
		if op == ast.Subtract {
			return value.Decimal{Val: a - b}, types.DecimalType, nil
		}
		return value.Decimal{Val: a * b}, types.DecimalType, nil
	default:
		return nil, types.Type{}, &IllegalOperation{Op: op, Line: line}
	}
}

// evalDivide is split out from evalArithmetic because Integer division by
// zero must not panic: the language has no dedicated division-by-zero
// error in its taxonomy, so this implementation reports it as the same
// IllegalOperation its operand types would otherwise produce.
func evalDivide(left value.Value, leftType types.Type, right value.Value, rightType types.Type, line int) (value.Value, types.Type, error) {
	switch {
	case leftType.Equals(types.IntegerType) && rightType.Equals(types.IntegerType):
		b := right.(value.Integer).Val
		if b == 0 {
			return nil, types.Type{}, &IllegalOperation{Op: ast.Divide, Line: line}
		}
		return value.Integer{Val: left.(value.Integer).Val / b}, types.IntegerType, nil
	case leftType.Equals(types.DecimalType) && rightType.Equals(types.DecimalType):
		return value.Decimal{Val: left.(value.Decimal).Val / right.(value.Decimal).Val}, types.DecimalType, nil
	default:
		return nil, types.Type{}, &IllegalOperation{Op: ast.Divide, Line: line}
	}
}

// evalComparison: only Integer,Integer is defined, producing Bool.
func evalComparison(op ast.Op, left value.Value, leftType types.Type, right value.Value, rightType types.Type, line int) (value.Value, types.Type, error) {
	if !leftType.Equals(types.IntegerType) || !rightType.Equals(types.IntegerType) {
		return nil, types.Type{}, &IllegalOperation{Op: op, Line: line}
	}
	a, b := left.(value.Integer).Val, right.(value.Integer).Val
	var result bool
	switch op {
	case ast.LessThan:
		result = a < b
	case ast.LessThanEqualTo:
		result = a <= b
	case ast.GreaterThan:
		result = a > b
	case ast.GreaterThanEqualTo:
		result = a >= b
	case ast.Equals:
		result = a == b
	}
	return value.Bool{Val: result}, types.BoolType, nil
}

// evalFunctionCall looks up name in the built-in registry, checks arity
// and positional argument types, then invokes the Go implementation.
func (a *Analyzer) evalFunctionCall(e *ast.FunctionCall) (value.Value, types.Type, error) {
	info, ok := a.Registry.Lookup(e.Name)
	if !ok {
		return nil, types.Type{}, &UndefinedFunction{Name: e.Name, Line: e.Line()}
	}
	if len(e.Args) != len(info.Params) {
		return nil, types.Type{}, &ArgumentCountMismatch{Name: e.Name, Want: len(info.Params), Got: len(e.Args), Line: e.Line()}
	}
	args := make([]value.Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, t, err := a.eval(argExpr)
		if err != nil {
			return nil, types.Type{}, err
		}
		if !t.Equals(info.Params[i]) {
			return nil, types.Type{}, &ArgumentTypeMismatch{Name: e.Name, Index: i, Want: info.Params[i], Got: t, Line: e.Line()}
		}
		args[i] = v
	}
	impl := builtins.Impls[e.Name]
	result, err := impl(a.IO, args)
	if err != nil {
		return nil, types.Type{}, err
	}
	return result, info.Returns, nil
}
