// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a token stream into the AST defined in
// internal/ast.
package parser

import (
	"github.com/go-pascal/pasfront/internal/ast"
	"github.com/go-pascal/pasfront/internal/diag"
	"github.com/go-pascal/pasfront/internal/lexer"
	"github.com/go-pascal/pasfront/pkg/token"
)

// Parser drives the lexer one token of lookahead ahead of the token
// it is currently examining.
type Parser struct {
	lex  *lexer.Lexer
	sink *diag.Sink

	curToken  token.Token
	peekToken token.Token

	constants map[string]ast.Constant

	// ParseToken is the §9 extension point: a future symbol table may
	// rewrite an identifier token into a literal token before the
	// parser dispatches on it. Defaults to the identity function.
	ParseToken func(token.Token) token.Token
}

// New primes the parser by requesting the first two tokens.
func New(lex *lexer.Lexer, sink *diag.Sink) *Parser {
	p := &Parser{lex: lex, sink: sink, constants: make(map[string]ast.Constant)}
	p.ParseToken = func(t token.Token) token.Token { return t }
	p.curToken = lex.NextToken()
	p.peekToken = lex.NextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// ErrorFlag reports whether the parser has ever reported a syntax
// diagnostic. Sticky by construction, same as the lexer's.
func (p *Parser) ErrorFlag() bool {
	return p.sink.AnyFrom(diag.SyntaxError)
}

// Constants returns the constants folded while parsing `const`
// sections, keyed by the identifier they were declared under. This is
// the observable trace of the "future symbol table" side effect named
// in §4.3 — the parser itself retains no binding, it only exposes what
// it folded.
func (p *Parser) Constants() map[string]ast.Constant {
	return p.constants
}

func (p *Parser) errorf(format string, args ...any) {
	p.sink.Reportf(diag.SyntaxError, p.curToken.Pos, format, args...)
}

// expect reports a mismatch and returns false if curToken does not
// have the given kind; otherwise it optionally advances and returns
// true. Mirrors the original's expectToken(TokenValue, name, advance).
func (p *Parser) expect(kind token.Kind, literal string, advance bool) bool {
	if p.curToken.Kind != kind {
		p.errorf("expected %q, found %q", literal, p.curToken.Lexeme)
		return false
	}
	if advance {
		p.nextToken()
	}
	return true
}

// expectCategory is expect's category-based sibling.
func (p *Parser) expectCategory(cat token.Category, description string, advance bool) bool {
	if p.curToken.Category != cat {
		p.errorf("expected %s, found %q", description, p.curToken.Lexeme)
		return false
	}
	if advance {
		p.nextToken()
	}
	return true
}

// validate is expect's non-reporting counterpart, used for optional
// tokens where the caller decides what a mismatch means.
func (p *Parser) validate(kind token.Kind, advance bool) bool {
	if p.curToken.Kind != kind {
		return false
	}
	if advance {
		p.nextToken()
	}
	return true
}

// synchronize recovers from a syntax error by discarding tokens up to
// and including the next ';', or up to (not including) the next
// 'end', whichever comes first.
func (p *Parser) synchronize() {
	for p.curToken.Category != token.ENDOFFILE {
		if p.curToken.Kind == token.SEMICOLON {
			p.nextToken()
			return
		}
		if p.curToken.Kind == token.END {
			return
		}
		p.nextToken()
	}
}

// Parse drives the grammar from the program heading through the main
// block's closing '.', returning the top-level ordered sequence of
// Expr nodes. It never panics; every failure path reports through the
// sink and returns whatever prefix of the program was recognized.
func (p *Parser) Parse() []ast.Expr {
	prog := p.parseProgramStatement()
	if prog == nil {
		return nil
	}
	result := []ast.Expr{prog}

	result = append(result, p.parseDeclarations()...)

	if p.curToken.Category == token.ENDOFFILE {
		p.errorf("unexpected end of file")
		return result
	}

	if !p.expect(token.BEGIN, "begin", false) {
		return result
	}
	block := p.parseBlock()
	result = append(result, block)

	if !p.expect(token.PERIOD, ".", true) {
		return result
	}
	return result
}
