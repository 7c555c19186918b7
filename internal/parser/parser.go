// Package parser implements a hand-written recursive-descent parser that
// turns a token stream into an ast.Program.
//
// A StatementsHandler drives top-level and block parsing and dispatches
// to one handler per statement construct, and an ExpressionHandler
// implements the operator precedence ladder by recursive descent rather
// than a Pratt/precedence table. Unlike a typical precedence-climbing
// parser, assignment and comparison intentionally share one
// non-associative level.
package parser

import (
	"fmt"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// UnexpectedToken is the parser's single error shape: every handler that
// fails does so because it wanted one token kind and found another.
type UnexpectedToken struct {
	Expected string
	Found    token.Token
	Line     int
}

func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("line %d: expected %s, found %s %q", e.Line, e.Expected, e.Found.Kind, e.Found.Literal)
}

// ErrorLine implements errors.Located.
func (e *UnexpectedToken) ErrorLine() int { return e.Line }

// Parser holds a read-only token slice and a single cursor into it. It
// never backtracks; every parse decision is made from the current token
// and, at most, one token of lookahead (peek).
type Parser struct {
	tokens []token.Token
	pos    int
}

// New constructs a Parser over an already-lexed token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses an already-lexed token stream into a Program in one call,
// for callers (the CLI, tests) that do not need a Parser value.
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.New(token.EOF, "", p.lastLine())
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return token.New(token.EOF, "", p.lastLine())
	}
	return p.tokens[idx]
}

func (p *Parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Line
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches kind, or returns an
// UnexpectedToken error naming what was wanted.
func (p *Parser) expect(kind token.Kind, description string) (token.Token, error) {
	if p.current().Kind != kind {
		return token.Token{}, &UnexpectedToken{Expected: description, Found: p.current(), Line: p.current().Line}
	}
	return p.advance(), nil
}

// ParseProgram parses the entire token stream as a sequence of top-level
// statements (StatementsHandler with insideBraces=false).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	stmts, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}
