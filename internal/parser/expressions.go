package parser

import (
	"github.com/go-pascal/pasfront/internal/ast"
	"github.com/go-pascal/pasfront/pkg/token"
)

// parseExpression parses a primary and climbs every binary operator
// whose precedence is at least minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}
	return p.parseBinRHS(minPrec, lhs)
}

// parseBinRHS is the precedence-climbing loop: it keeps folding
// `lhs op rhs` into a new lhs as long as the next token is an
// operator with precedence >= minPrec. A higher-precedence operator
// to the right of the one just consumed is resolved first by handing
// the recursive call op's precedence + 1 as its own minimum.
func (p *Parser) parseBinRHS(minPrec int, lhs ast.Expr) ast.Expr {
	for {
		opTok := p.curToken
		if !opTok.IsOperator() || opTok.Kind == token.NOT {
			return lhs
		}
		prec := opTok.Precedence
		if prec < minPrec {
			return lhs
		}
		p.nextToken()
		rhs := p.parsePrimary()
		if rhs == nil {
			return lhs
		}
		rhs = p.parseBinRHS(prec+1, rhs)
		lhs = &ast.BinaryExpr{Token: opTok, Left: lhs, Operator: opTok.Lexeme, Right: rhs}
	}
}

// parsePrimary recognizes literals, identifiers, parenthesised
// expressions, set literals, and prefix +/-/not. Every call routes
// the current token through ParseToken first, the hook a future
// symbol table uses to rewrite a constant identifier into its literal
// value before the parser ever sees it as a name.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.ParseToken(p.curToken)

	switch {
	case tok.Kind == token.PLUS || tok.Kind == token.MINUS || tok.Kind == token.NOT:
		p.nextToken()
		operand := p.parsePrimary()
		return &ast.UnaryExpr{Token: tok, Operator: tok.Lexeme, Operand: operand}

	case tok.Kind == token.LPAREN:
		p.nextToken()
		inner := p.parseExpression(0)
		p.expect(token.RPAREN, ")", true)
		return &ast.GroupedExpr{Token: tok, Inner: inner}

	case tok.Kind == token.LBRACK:
		return p.parseSetExpr()

	case tok.Category == token.INTEGER:
		p.nextToken()
		return &ast.IntegerLiteral{Token: tok, Value: tok.IntVal}

	case tok.Category == token.REAL:
		p.nextToken()
		return &ast.RealLiteral{Token: tok, Value: tok.FloatVal}

	case tok.Category == token.CHAR:
		p.nextToken()
		return &ast.CharLiteral{Token: tok, Value: byte(tok.IntVal)}

	case tok.Category == token.STRINGLITERAL:
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Text}

	case tok.Category == token.IDENTIFIER:
		p.nextToken()
		return &ast.Identifier{Token: tok, Name: tok.Text}

	default:
		p.errorf("unexpected token in expression: %q", tok.Lexeme)
		p.nextToken()
		return nil
	}
}

// parseSetExpr handles `'[' [expr {',' expr}] ']'`.
func (p *Parser) parseSetExpr() *ast.SetExpr {
	lbTok := p.curToken
	p.nextToken()

	var elements []ast.Expr
	if p.curToken.Kind != token.RBRACK {
		for {
			elements = append(elements, p.parseExpression(0))
			if p.validate(token.COMMA, true) {
				continue
			}
			break
		}
	}
	p.expect(token.RBRACK, "]", true)
	return &ast.SetExpr{Token: lbTok, Elements: elements}
}

// parseConstantExpression recognizes the constant grammar used inside
// a const section: an optional sign or 'not', then an unsigned
// number, a character, or a string, with parentheses allowed to wrap
// the whole thing. Grounded on the original's
// parseConstantExpression, including its rejection rules: sign is
// illegal on char and string constants, 'not' is illegal on real and
// string constants.
func (p *Parser) parseConstantExpression() *ast.Constant {
	if p.curToken.Kind == token.LPAREN {
		p.nextToken()
		inner := p.parseConstantExpression()
		p.expect(token.RPAREN, ")", true)
		return inner
	}

	pos := p.curToken.Pos
	sign := int64(1)
	hasSign := false
	notFlag := false
	switch p.curToken.Kind {
	case token.PLUS:
		hasSign = true
		p.nextToken()
	case token.MINUS:
		hasSign = true
		sign = -1
		p.nextToken()
	case token.NOT:
		notFlag = true
		p.nextToken()
	}

	tok := p.curToken
	switch tok.Category {
	case token.INTEGER:
		v := tok.IntVal
		if notFlag {
			v = ^v
		}
		p.nextToken()
		return &ast.Constant{Kind: ast.IntConst, Pos: pos, IntVal: v * sign}

	case token.REAL:
		if notFlag {
			p.errorf("'not' cannot be applied to a real constant")
			p.nextToken()
			return nil
		}
		v := tok.FloatVal * float64(sign)
		p.nextToken()
		return &ast.Constant{Kind: ast.RealConst, Pos: pos, RealVal: v}

	case token.CHAR:
		if hasSign {
			p.errorf("'+' or '-' cannot be applied to a char constant")
			p.nextToken()
			return nil
		}
		v := tok.IntVal
		if notFlag {
			v = ^v
		}
		p.nextToken()
		return &ast.Constant{Kind: ast.CharConst, Pos: pos, CharVal: byte(v)}

	case token.STRINGLITERAL:
		if hasSign || notFlag {
			p.errorf("'+', '-' or 'not' cannot be applied to a string constant")
			p.nextToken()
			return nil
		}
		v := tok.Text
		p.nextToken()
		return &ast.Constant{Kind: ast.StringConst, Pos: pos, StrVal: v}

	case token.IDENTIFIER:
		// Constant-identifier substitution belongs to the symbol
		// table a later stage owns; this module has none to consult.
		p.errorf("constant identifier %q cannot be resolved here", tok.Lexeme)
		p.nextToken()
		return nil

	default:
		p.errorf("expected a constant, found %q", tok.Lexeme)
		p.nextToken()
		return nil
	}
}
