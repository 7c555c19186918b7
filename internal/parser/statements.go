package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// parseStatements is the StatementsHandler: it consumes statements until it
// runs out of tokens (top level, insideBraces=false) or hits the RBRACE that
// closes the block it was asked to parse (insideBraces=true). An RBRACE seen
// at the top level, or EOF seen before a promised RBRACE, is an error.
func (p *Parser) parseStatements(insideBraces bool) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		switch p.current().Kind {
		case token.EOF:
			if insideBraces {
				return nil, &UnexpectedToken{Expected: "}", Found: p.current(), Line: p.current().Line}
			}
			return stmts, nil
		case token.RBRACE:
			if !insideBraces {
				return nil, &UnexpectedToken{Expected: "statement", Found: p.current(), Line: p.current().Line}
			}
			p.advance()
			return stmts, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseBlock expects and consumes a `{ ... }` block, returning its body.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	return p.parseStatements(true)
}

// parseStatement dispatches on the current token's kind to the one handler
// that owns it.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.IDENTIFIER:
		if p.peekAt(1).Kind == token.ASSIGN {
			return p.parseAssignmentStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement: `let` IDENTIFIER `=` expr.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	tok := p.advance() // LET
	name, err := p.expect(token.IDENTIFIER, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpressionStatementLevel()
	if err != nil {
		return nil, err
	}
	return &ast.LetStatement{Tok: tok, Name: name.Literal, Value: value}, nil
}

// parseAssignmentStatement: IDENTIFIER `=` expr. Only reachable once the
// caller has already peeked an ASSIGN following the identifier.
func (p *Parser) parseAssignmentStatement() (ast.Statement, error) {
	name := p.advance() // IDENTIFIER
	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpressionStatementLevel()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentStatement{Tok: name, Name: name.Literal, Value: value}, nil
}

// parseExpressionStatement parses a bare expression, evaluated for effect
// and discarded (function calls, mainly).
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.current()
	expr, err := p.parseExpressionStatementLevel()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Tok: tok, Expr: expr}, nil
}

// parseIfStatement: `if` expr `{` statement* `}`. No else branch exists.
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	tok := p.advance() // IF
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.IfStatement{Tok: tok, Cond: cond, Body: body}, nil
}

// parseForStatement: `for` `(` init `;` cond `;` step `)` `{` statement* `}`.
// init is parsed as a full statement (Let, assignment, or expression);
// cond and step are parsed through parseExpressionStatementLevel. Each of
// the three consumes its own trailing SEMICOLON, the way Let and
// assignment do.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	tok := p.advance() // FOR
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}

	init, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpressionStatementLevel()
	if err != nil {
		return nil, err
	}
	stepTok := p.current()
	stepExpr, err := p.parseExpressionStatementLevel()
	if err != nil {
		return nil, err
	}
	step := &ast.ExpressionStatement{Tok: stepTok, Expr: stepExpr}

	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Tok: tok, Init: init, Cond: cond, Step: step, Body: body}, nil
}

// parseFunctionDeclaration parses a function header and body but does not
// otherwise act on it: user-defined function bodies are never executed, so
// the analyzer treats this node as a no-op.
func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	tok := p.advance() // FUNCTION
	name, err := p.expect(token.IDENTIFIER, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var params []ast.Param
	for p.current().Kind != token.RPAREN {
		pname, err := p.expect(token.IDENTIFIER, "parameter name")
		if err != nil {
			return nil, err
		}
		ptype := ""
		if p.current().Kind == token.IDENTIFIER {
			ptype = p.advance().Literal
		}
		params = append(params, ast.Param{Name: pname.Literal, Type: ptype})
		if p.current().Kind != token.RPAREN {
			if _, err := p.expect(token.COMMA, ", or )"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	returnType := ""
	if p.current().Kind == token.IDENTIFIER {
		returnType = p.advance().Literal
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Tok: tok, Name: name.Literal, Params: params, Body: body, ReturnType: returnType}, nil
}
