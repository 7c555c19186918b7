// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and walked by the analyzer.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/quill-lang/quill/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal text of the token most closely
	// associated with this node, mainly for diagnostics.
	TokenLiteral() string
	// String renders the node back to source-like text, for debugging, the
	// `parse` CLI command's default output, and `run --dump-ast`.
	String() string
	// Line returns the 0-based source line this node starts on.
	Line() int
}

// Statement is a node executed for effect; it never produces a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node the analyzer evaluates to produce a (Value, Type)
// pair.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the AST: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Line() int {
	if len(p.Statements) > 0 {
		return p.Statements[0].Line()
	}
	return 0
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}

// Op enumerates the operators that appear inside a BinOp or UnaryOp node.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
	Equals
	Assign
	LessThan
	LessThanEqualTo
	GreaterThan
	GreaterThanEqualTo
)

var opNames = map[Op]string{
	Add:                "+",
	Subtract:           "-",
	Multiply:           "*",
	Divide:             "/",
	Equals:             "==",
	Assign:             "=",
	LessThan:           "<",
	LessThanEqualTo:    "<=",
	GreaterThan:        ">",
	GreaterThanEqualTo: ">=",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "UNKNOWN_OP"
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// LetStatement introduces a new binding: `let name = expr`.
type LetStatement struct {
	Tok   token.Token // the LET token
	Name  string
	Value Expression
}

func (s *LetStatement) statementNode()       {}
func (s *LetStatement) TokenLiteral() string { return s.Tok.Literal }
func (s *LetStatement) Line() int            { return s.Tok.Line }
func (s *LetStatement) String() string {
	return fmt.Sprintf("let %s = %s;", s.Name, s.Value.String())
}

// AssignmentStatement overwrites an existing binding: `name = expr`.
type AssignmentStatement struct {
	Tok   token.Token // the IDENTIFIER token on the left-hand side
	Name  string
	Value Expression
}

func (s *AssignmentStatement) statementNode()       {}
func (s *AssignmentStatement) TokenLiteral() string { return s.Tok.Literal }
func (s *AssignmentStatement) Line() int            { return s.Tok.Line }
func (s *AssignmentStatement) String() string {
	return fmt.Sprintf("%s = %s;", s.Name, s.Value.String())
}

// ExpressionStatement evaluates an expression purely for its side effects
// (typically a function call) and discards the result.
type ExpressionStatement struct {
	Tok  token.Token // the first token of the expression
	Expr Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Tok.Literal }
func (s *ExpressionStatement) Line() int            { return s.Tok.Line }
func (s *ExpressionStatement) String() string {
	if s.Expr == nil {
		return ""
	}
	return s.Expr.String() + ";"
}

// IfStatement executes Body when Cond evaluates to true. There is no else
// branch in this language.
type IfStatement struct {
	Tok  token.Token // the IF token
	Cond Expression
	Body []Statement
}

func (s *IfStatement) statementNode()       {}
func (s *IfStatement) TokenLiteral() string { return s.Tok.Literal }
func (s *IfStatement) Line() int            { return s.Tok.Line }
func (s *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(s.Cond.String())
	out.WriteString(" {")
	for _, stmt := range s.Body {
		out.WriteString(stmt.String())
	}
	out.WriteString("}")
	return out.String()
}

// ForStatement is a C-style counted loop: init runs once, cond is checked
// before every iteration, step runs after every iteration's body.
type ForStatement struct {
	Tok  token.Token // the FOR token
	Init Statement
	Cond Expression
	Step Statement
	Body []Statement
}

func (s *ForStatement) statementNode()       {}
func (s *ForStatement) TokenLiteral() string { return s.Tok.Literal }
func (s *ForStatement) Line() int            { return s.Tok.Line }
func (s *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	out.WriteString(s.Init.String())
	out.WriteString(" ")
	out.WriteString(s.Cond.String())
	out.WriteString("; ")
	out.WriteString(s.Step.String())
	out.WriteString(") {")
	for _, stmt := range s.Body {
		out.WriteString(stmt.String())
	}
	out.WriteString("}")
	return out.String()
}

// Param is one entry of a FunctionDeclaration's ordered parameter list.
type Param struct {
	Name string
	Type string // textual type name as written in source; unresolved
}

// FunctionDeclaration is parsed but reserved: user-defined functions with
// bodies are never executed, so the analyzer accepts this node without
// error and performs no action.
type FunctionDeclaration struct {
	Tok        token.Token // the FUNCTION token
	Name       string
	Params     []Param
	Body       []Statement
	ReturnType string // empty when unannotated
}

func (s *FunctionDeclaration) statementNode()       {}
func (s *FunctionDeclaration) TokenLiteral() string { return s.Tok.Literal }
func (s *FunctionDeclaration) Line() int            { return s.Tok.Line }
func (s *FunctionDeclaration) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Name + ": " + p.Type
	}
	return fmt.Sprintf("function %s(%s) { ... }", s.Name, strings.Join(params, ", "))
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// BinOp is a binary operator expression: `left op right`.
type BinOp struct {
	Tok   token.Token // the operator token
	Left  Expression
	Op    Op
	Right Expression
}

func (e *BinOp) expressionNode()      {}
func (e *BinOp) TokenLiteral() string { return e.Tok.Literal }
func (e *BinOp) Line() int            { return e.Tok.Line }
func (e *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op.String(), e.Right.String())
}

// UnaryOp is a prefix operator expression: `op operand`.
type UnaryOp struct {
	Tok     token.Token // the operator token
	Op      Op
	Operand Expression
}

func (e *UnaryOp) expressionNode()      {}
func (e *UnaryOp) TokenLiteral() string { return e.Tok.Literal }
func (e *UnaryOp) Line() int            { return e.Tok.Line }
func (e *UnaryOp) String() string {
	return fmt.Sprintf("(%s%s)", e.Op.String(), e.Operand.String())
}

// Identifier is a reference to a variable by name.
type Identifier struct {
	Tok  token.Token // the IDENTIFIER token
	Name string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Tok.Literal }
func (e *Identifier) Line() int            { return e.Tok.Line }
func (e *Identifier) String() string       { return e.Name }

// NumberLiteral is a numeric literal in its original textual form; the
// analyzer decides Integer vs. Decimal from whether Text contains '.'.
type NumberLiteral struct {
	Tok  token.Token // the NUMBER token
	Text string
}

func (e *NumberLiteral) expressionNode()      {}
func (e *NumberLiteral) TokenLiteral() string { return e.Tok.Literal }
func (e *NumberLiteral) Line() int            { return e.Tok.Line }
func (e *NumberLiteral) String() string       { return e.Text }

// StringLiteral is a string literal; Value is the literal body with the
// surrounding quotes already stripped by the lexer.
type StringLiteral struct {
	Tok   token.Token // the STRING token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Tok.Literal }
func (e *StringLiteral) Line() int            { return e.Tok.Line }
func (e *StringLiteral) String() string       { return fmt.Sprintf("%q", e.Value) }

// BooleanLiteral is the `true` or `false` literal.
type BooleanLiteral struct {
	Tok   token.Token // the TRUE or FALSE token
	Value bool
}

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Tok.Literal }
func (e *BooleanLiteral) Line() int            { return e.Tok.Line }
func (e *BooleanLiteral) String() string       { return e.Tok.Literal }

// FunctionCall invokes a built-in by name with a positional argument list.
type FunctionCall struct {
	Tok  token.Token // the IDENTIFIER token naming the function
	Name string
	Args []Expression
}

func (e *FunctionCall) expressionNode()      {}
func (e *FunctionCall) TokenLiteral() string { return e.Tok.Literal }
func (e *FunctionCall) Line() int            { return e.Tok.Line }
func (e *FunctionCall) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}

// ArrayLiteral is a bracketed, comma-separated list of elements that must
// all share one element type.
type ArrayLiteral struct {
	Tok      token.Token // the LBRACKET token
	Elements []Expression
}

func (e *ArrayLiteral) expressionNode()      {}
func (e *ArrayLiteral) TokenLiteral() string { return e.Tok.Literal }
func (e *ArrayLiteral) Line() int            { return e.Tok.Line }
func (e *ArrayLiteral) String() string {
	elems := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		elems[i] = el.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
