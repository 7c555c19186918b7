package parser_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/parser"
	"github.com/quill-lang/quill/internal/token"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error: %v", src, err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	return prog
}

func TestParseLetStatement(t *testing.T) {
	prog := mustParse(t, `let x = 5;`)
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	let, ok := prog.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LetStatement", prog.Statements[0])
	}
	if let.Name != "x" {
		t.Errorf("Name = %q, want x", let.Name)
	}
	num, ok := let.Value.(*ast.NumberLiteral)
	if !ok || num.Text != "5" {
		t.Errorf("Value = %#v, want NumberLiteral(5)", let.Value)
	}
}

func TestParseAssignmentStatement(t *testing.T) {
	prog := mustParse(t, `x = x + 1;`)
	assign, ok := prog.Statements[0].(*ast.AssignmentStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.AssignmentStatement", prog.Statements[0])
	}
	if assign.Name != "x" {
		t.Errorf("Name = %q, want x", assign.Name)
	}
	if _, ok := assign.Value.(*ast.BinOp); !ok {
		t.Errorf("Value = %#v, want *ast.BinOp", assign.Value)
	}
}

func TestParseExpressionStatementCall(t *testing.T) {
	prog := mustParse(t, `print("hi");`)
	exprStmt, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", prog.Statements[0])
	}
	call, ok := exprStmt.Expr.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("Expr is %T, want *ast.FunctionCall", exprStmt.Expr)
	}
	if call.Name != "print" || len(call.Args) != 1 {
		t.Errorf("call = %#v", call)
	}
}

func TestParseCallWithMultipleArguments(t *testing.T) {
	prog := mustParse(t, `foo(1, 2, 3);`)
	exprStmt := prog.Statements[0].(*ast.ExpressionStatement)
	call := exprStmt.Expr.(*ast.FunctionCall)
	if len(call.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(call.Args))
	}
}

func TestParseArrayLiteral(t *testing.T) {
	prog := mustParse(t, `let xs = [1, 2, 3];`)
	let := prog.Statements[0].(*ast.LetStatement)
	arr, ok := let.Value.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("Value is %T, want *ast.ArrayLiteral", let.Value)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr.Elements))
	}
}

func TestParseIfStatement(t *testing.T) {
	prog := mustParse(t, `if x < 10 { let y = 1; }`)
	ifs, ok := prog.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.IfStatement", prog.Statements[0])
	}
	cond, ok := ifs.Cond.(*ast.BinOp)
	if !ok || cond.Op != ast.LessThan {
		t.Errorf("Cond = %#v, want LessThan BinOp", ifs.Cond)
	}
	if len(ifs.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(ifs.Body))
	}
}

func TestParseForStatement(t *testing.T) {
	prog := mustParse(t, `for (let i = 0; i < 10; i = i + 1;) { print("x"); }`)
	forStmt, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ForStatement", prog.Statements[0])
	}
	if _, ok := forStmt.Init.(*ast.LetStatement); !ok {
		t.Errorf("Init = %#v, want *ast.LetStatement", forStmt.Init)
	}
	if _, ok := forStmt.Cond.(*ast.BinOp); !ok {
		t.Errorf("Cond = %#v, want *ast.BinOp", forStmt.Cond)
	}
	if forStmt.Step == nil {
		t.Errorf("Step is nil")
	}
	if len(forStmt.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(forStmt.Body))
	}
}

func TestOperatorPrecedenceAdditiveBeforeComparison(t *testing.T) {
	prog := mustParse(t, `x = 1 + 2 < 3;`)
	assign := prog.Statements[0].(*ast.AssignmentStatement)
	top, ok := assign.Value.(*ast.BinOp)
	if !ok || top.Op != ast.LessThan {
		t.Fatalf("top-level op = %#v, want LessThan", assign.Value)
	}
	left, ok := top.Left.(*ast.BinOp)
	if !ok || left.Op != ast.Add {
		t.Errorf("left = %#v, want Add BinOp", top.Left)
	}
}

func TestOperatorPrecedenceMultiplicativeBeforeAdditive(t *testing.T) {
	prog := mustParse(t, `let x = 2 + 3 * 4;`)
	let := prog.Statements[0].(*ast.LetStatement)
	top, ok := let.Value.(*ast.BinOp)
	if !ok || top.Op != ast.Add {
		t.Fatalf("top-level op = %#v, want Add", let.Value)
	}
	right, ok := top.Right.(*ast.BinOp)
	if !ok || right.Op != ast.Multiply {
		t.Errorf("right = %#v, want Multiply BinOp", top.Right)
	}
}

func TestImplicitMultiplication(t *testing.T) {
	prog := mustParse(t, `let x = 2(3 + 1);`)
	let := prog.Statements[0].(*ast.LetStatement)
	top, ok := let.Value.(*ast.BinOp)
	if !ok || top.Op != ast.Multiply {
		t.Fatalf("Value = %#v, want Multiply BinOp", let.Value)
	}
	if _, ok := top.Left.(*ast.NumberLiteral); !ok {
		t.Errorf("Left = %#v, want NumberLiteral", top.Left)
	}
	if _, ok := top.Right.(*ast.BinOp); !ok {
		t.Errorf("Right = %#v, want BinOp", top.Right)
	}
}

func TestUnaryMinus(t *testing.T) {
	prog := mustParse(t, `let x = -5;`)
	let := prog.Statements[0].(*ast.LetStatement)
	un, ok := let.Value.(*ast.UnaryOp)
	if !ok || un.Op != ast.Subtract {
		t.Fatalf("Value = %#v, want Subtract UnaryOp", let.Value)
	}
}

func TestRightRecursiveComparisonChain(t *testing.T) {
	prog := mustParse(t, `x = a < b == c;`)
	assign := prog.Statements[0].(*ast.AssignmentStatement)
	top, ok := assign.Value.(*ast.BinOp)
	if !ok || top.Op != ast.LessThan {
		t.Fatalf("top-level op = %#v, want LessThan", assign.Value)
	}
	if _, ok := top.Right.(*ast.BinOp); !ok {
		t.Errorf("Right = %#v, want nested BinOp (Equals)", top.Right)
	}
}

func TestUnexpectedTokenOnMissingClosingParen(t *testing.T) {
	_, err := parser.Parse(tokensOf(t, `let x = (1 + 2;`))
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
	if _, ok := err.(*parser.UnexpectedToken); !ok {
		t.Errorf("err = %#v, want *parser.UnexpectedToken", err)
	}
}

func TestUnexpectedTokenOnBareClosingBrace(t *testing.T) {
	_, err := parser.Parse(tokensOf(t, `}`))
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
}

func TestUnexpectedTokenOnUnterminatedBlock(t *testing.T) {
	_, err := parser.Parse(tokensOf(t, `if true { let x = 1;`))
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
}

func tokensOf(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error: %v", src, err)
	}
	return toks
}
