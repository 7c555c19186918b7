package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// comparisonOps and additiveOps/multiplicativeOps map the token kinds each
// ExpressionHandler layer accepts to their ast.Op tag.
var comparisonOps = map[token.Kind]ast.Op{
	token.ASSIGN: ast.Assign,
	token.LT_EQ:  ast.LessThanEqualTo,
	token.EQ:     ast.Equals,
	token.GT_EQ:  ast.GreaterThanEqualTo,
	token.GT:     ast.GreaterThan,
	token.LT:     ast.LessThan,
}

var additiveOps = map[token.Kind]ast.Op{
	token.PLUS:  ast.Add,
	token.MINUS: ast.Subtract,
}

var multiplicativeOps = map[token.Kind]ast.Op{
	token.ASTERISK: ast.Multiply,
	token.SLASH:    ast.Divide,
}

// parseExpressionStatementLevel parses one expression and then consumes a
// trailing SEMICOLON if present (grammar: `let`/`assign`/`exprStmt`/each of
// `for`'s three clauses all end in `';'?`). Nested sub-parses (a comparison's
// right-hand side, a call argument, an array element) use parseExpression
// instead, since only the outermost call at a statement boundary should
// absorb the terminator.
func (p *Parser) parseExpressionStatementLevel() (ast.Expression, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == token.SEMICOLON {
		p.advance()
	}
	return expr, nil
}

// parseExpression is the ExpressionHandler entry point: layer 1,
// comparison/assignment. It does not loop over this layer's operators:
// after one operator it recurses, so the right-hand side is a full
// expression, not just an additive term, and `a = b = c` and `a < b == c`
// both parse (the inner occurrence wins the grouping).
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := comparisonOps[p.current().Kind]; ok {
		opTok := p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Tok: opTok, Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

// parseAdditive is layer 2: left-associative `+`/`-` chained over
// multiplicative terms.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := additiveOps[p.current().Kind]
		if !ok {
			return left, nil
		}
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Tok: opTok, Left: left, Op: op, Right: right}
	}
}

// parseMultiplicative is layer 3: left-associative `*`/`/` chained over
// factors, plus implicit multiplication: a factor immediately followed by
// `(` multiplies by the parenthesized expression (`2(x+1)` == `2*(x+1)`).
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		if op, ok := multiplicativeOps[p.current().Kind]; ok {
			opTok := p.advance()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = &ast.BinOp{Tok: opTok, Left: left, Op: op, Right: right}
			continue
		}
		if p.current().Kind == token.LPAREN {
			opTok := p.current()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = &ast.BinOp{Tok: opTok, Left: left, Op: ast.Multiply, Right: right}
			continue
		}
		return left, nil
	}
}

// parseFactor is layer 4, the base case of the precedence ladder: literals,
// unary +/-, parenthesized sub-expressions, identifiers, and calls.
func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.current()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return &ast.NumberLiteral{Tok: tok, Text: tok.Literal}, nil

	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Tok: tok, Value: tok.Literal}, nil

	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Tok: tok, Value: tok.Kind == token.TRUE}, nil

	case token.PLUS, token.MINUS:
		p.advance()
		op := ast.Add
		if tok.Kind == token.MINUS {
			op = ast.Subtract
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Tok: tok, Op: op, Operand: operand}, nil

	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LBRACKET:
		return p.parseArrayLiteral()

	case token.IDENTIFIER:
		p.advance()
		if p.current().Kind == token.LPAREN {
			return p.parseCallArguments(tok)
		}
		return &ast.Identifier{Tok: tok, Name: tok.Literal}, nil

	default:
		return nil, &UnexpectedToken{Expected: "expression", Found: tok, Line: tok.Line}
	}
}

// parseCallArguments parses `( (expr (',' expr)*)? )` following a
// function-naming identifier already consumed by the caller.
func (p *Parser) parseCallArguments(nameTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.current().Kind != token.RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current().Kind != token.RPAREN {
			if _, err := p.expect(token.COMMA, ", or )"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Tok: nameTok, Name: nameTok.Literal, Args: args}, nil
}

// parseArrayLiteral parses `'[' (expr (',' expr)*)? ']'`. This construct is
// not shown in the grammar's `factor` production but is required by the
// Array AST node.
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	tok := p.advance() // LBRACKET
	var elems []ast.Expression
	for p.current().Kind != token.RBRACKET {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.current().Kind != token.RBRACKET {
			if _, err := p.expect(token.COMMA, ", or ]"); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RBRACKET, "]"); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Tok: tok, Elements: elems}, nil
}
