package parser

import (
	"github.com/go-pascal/pasfront/internal/ast"
	"github.com/go-pascal/pasfront/pkg/token"
)

// parseProgramStatement recognizes `program name [ '(' id {',' id} ')' ] ';'`.
// Grounded on the original's parseProgramStatement, which accepted the
// same optional parenthesised parameter list before requiring the
// terminating ';'.
func (p *Parser) parseProgramStatement() *ast.Program {
	progTok := p.curToken
	if !p.expect(token.PROGRAM, "program", true) {
		p.synchronize()
		return nil
	}
	if !p.expectCategory(token.IDENTIFIER, "an identifier", false) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()

	var params []string
	if p.validate(token.LPAREN, true) {
		for {
			if !p.expectCategory(token.IDENTIFIER, "an identifier", false) {
				break
			}
			params = append(params, p.curToken.Text)
			p.nextToken()
			if p.validate(token.COMMA, true) {
				continue
			}
			break
		}
		p.expect(token.RPAREN, ")", true)
	}

	if !p.expect(token.SEMICOLON, ";", true) {
		p.synchronize()
	}
	return &ast.Program{Token: progTok, Name: name, Params: params}
}

// parseDeclarations consumes the const/type/var/procedure/function
// sections that may precede a block's 'begin', in any order and any
// number of times, matching the top-level dispatch table in §4.3.
func (p *Parser) parseDeclarations() []ast.Expr {
	var decls []ast.Expr
	for {
		switch p.curToken.Kind {
		case token.FUNCTION, token.PROCEDURE:
			if d := p.parseFunctionDefinition(); d != nil {
				decls = append(decls, d)
			}
		case token.VAR:
			for _, d := range p.parseVariableDeclaration() {
				decls = append(decls, d)
			}
		case token.TYPE:
			p.parseTypeDefinition()
		case token.CONST:
			p.parseConstantDefinitions()
		case token.SEMICOLON:
			p.nextToken()
		default:
			return decls
		}
	}
}

// parseConstantDefinitions handles `const id '=' constant ';' { ... }`.
// Folded constants are recorded in p.constants; no AST node is
// returned for the section itself, matching §4.3's note that the
// const section's only observable effect is on a future symbol table.
func (p *Parser) parseConstantDefinitions() {
	p.expect(token.CONST, "const", true)
	for p.curToken.Category == token.IDENTIFIER {
		name := p.curToken.Text
		p.nextToken()
		if !p.expect(token.EQ, "=", true) {
			p.synchronize()
			return
		}
		if val := p.parseConstantExpression(); val != nil {
			p.constants[name] = *val
		}
		if !p.expect(token.SEMICOLON, ";", true) {
			p.synchronize()
			return
		}
	}
}

// parseTypeDefinition skips a `type id '=' ... ';' { ... }` section
// structurally. Type denoters are out of scope (§1 non-goals exclude
// semantic analysis), so this only has to recognize the section's
// boundaries well enough not to confuse the declarations dispatcher.
func (p *Parser) parseTypeDefinition() {
	p.expect(token.TYPE, "type", true)
	for p.curToken.Category == token.IDENTIFIER {
		p.nextToken()
		if !p.expect(token.EQ, "=", true) {
			p.synchronize()
			return
		}
		for p.curToken.Kind != token.SEMICOLON && p.curToken.Category != token.ENDOFFILE {
			p.nextToken()
		}
		if !p.expect(token.SEMICOLON, ";", true) {
			return
		}
	}
}

// parseVariableDeclaration handles one `var` section made of
// `name {',' name} ':' type ';'` groups, returning one VariableDecl
// per group.
func (p *Parser) parseVariableDeclaration() []*ast.VariableDecl {
	varTok := p.curToken
	p.expect(token.VAR, "var", true)

	var decls []*ast.VariableDecl
	for p.curToken.Category == token.IDENTIFIER {
		var names []string
		for {
			names = append(names, p.curToken.Text)
			p.nextToken()
			if p.validate(token.COMMA, true) {
				continue
			}
			break
		}
		if !p.expect(token.COLON, ":", true) {
			p.synchronize()
			return decls
		}
		if !p.expectCategory(token.IDENTIFIER, "a type name", false) {
			p.synchronize()
			return decls
		}
		typeName := p.curToken.Text
		p.nextToken()
		if !p.expect(token.SEMICOLON, ";", true) {
			p.synchronize()
			return decls
		}
		decls = append(decls, &ast.VariableDecl{Token: varTok, Names: names, Type: typeName})
	}
	return decls
}

// parseFunctionDefinition handles both `function` and `procedure`
// headers, recursing into parseDeclarations/parseBlock for a full
// body or accepting a bare `forward;` in its place.
func (p *Parser) parseFunctionDefinition() *ast.FunctionDecl {
	kwTok := p.curToken
	isFunction := p.curToken.Kind == token.FUNCTION
	p.nextToken()

	if !p.expectCategory(token.IDENTIFIER, "an identifier", false) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()

	var params []string
	if p.validate(token.LPAREN, true) {
		for p.curToken.Kind != token.RPAREN && p.curToken.Category != token.ENDOFFILE {
			if !p.expectCategory(token.IDENTIFIER, "a parameter name", false) {
				break
			}
			params = append(params, p.curToken.Text)
			p.nextToken()
			if p.validate(token.COLON, true) {
				if p.expectCategory(token.IDENTIFIER, "a type name", false) {
					p.nextToken()
				}
			}
			if !p.validate(token.COMMA, true) {
				break
			}
		}
		p.expect(token.RPAREN, ")", true)
	}

	returnType := ""
	if isFunction {
		p.expect(token.COLON, ":", true)
		if p.expectCategory(token.IDENTIFIER, "a type name", false) {
			returnType = p.curToken.Lexeme
			p.nextToken()
		}
	}
	if !p.expect(token.SEMICOLON, ";", true) {
		p.synchronize()
	}

	proto := &ast.Prototype{Token: kwTok, Name: name, Params: params, ReturnType: returnType}

	if p.validate(token.FORWARD, true) {
		p.expect(token.SEMICOLON, ";", true)
		return &ast.FunctionDecl{Token: kwTok, Signature: proto}
	}

	p.parseDeclarations()

	var body *ast.Block
	if p.curToken.Kind == token.BEGIN {
		body = p.parseBlock()
		p.expect(token.SEMICOLON, ";", true)
	} else {
		p.errorf("expected a function body or 'forward', found %q", p.curToken.Lexeme)
		p.synchronize()
	}
	return &ast.FunctionDecl{Token: kwTok, Signature: proto, Body: body}
}

// parseBlock handles `begin stmt {';' stmt} end`. An empty block
// (`begin end`) and trailing empty statements (`s1;;end`) are both
// legal: parseStatement returns nil for an empty statement and the
// loop simply does not append it.
func (p *Parser) parseBlock() *ast.Block {
	beginTok := p.curToken
	p.expect(token.BEGIN, "begin", true)

	var statements []ast.Expr
	for {
		if p.curToken.Kind == token.END || p.curToken.Category == token.ENDOFFILE {
			break
		}
		if stmt := p.parseStatement(); stmt != nil {
			statements = append(statements, stmt)
		}
		if p.validate(token.SEMICOLON, true) {
			continue
		}
		break
	}
	p.expect(token.END, "end", true)
	return &ast.Block{Token: beginTok, Statements: statements}
}

// parseStatement dispatches on the current token's kind, matching
// §4.3's statement table. An empty statement (curToken already at
// ';' or 'end') yields nil without consuming anything.
func (p *Parser) parseStatement() ast.Expr {
	switch p.curToken.Kind {
	case token.SEMICOLON, token.END:
		return nil
	case token.BEGIN:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.REPEAT:
		return p.parseRepeatStatement()
	case token.CASE:
		return p.parseCaseStatement()
	case token.WITH:
		return p.parseWithStatement()
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement parses an identifier-led expression and turns
// it into an Assign if it is immediately followed by ':='; otherwise
// the expression itself is the statement (a free-standing expression,
// accepted structurally even though I/O routines and procedure calls
// have no dedicated AST representation here — §1 leaves routine
// semantics out of scope).
func (p *Parser) parseSimpleStatement() ast.Expr {
	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}
	if p.curToken.Kind == token.ASSIGN {
		assignTok := p.curToken
		p.nextToken()
		rhs := p.parseExpression(0)
		return &ast.Assign{Token: assignTok, Lhs: lhs, Rhs: rhs}
	}
	return p.parseBinRHS(0, lhs)
}

func (p *Parser) parseIfStatement() *ast.If {
	ifTok := p.curToken
	p.nextToken()
	cond := p.parseExpression(0)
	if !p.expect(token.THEN, "then", true) {
		p.synchronize()
		return &ast.If{Token: ifTok, Cond: cond}
	}
	thenPart := p.parseStatement()

	var elsePart ast.Expr
	if p.validate(token.ELSE, true) {
		elsePart = p.parseStatement()
	}
	return &ast.If{Token: ifTok, Cond: cond, ThenPart: thenPart, ElsePart: elsePart}
}

func (p *Parser) parseWhileStatement() *ast.While {
	whileTok := p.curToken
	p.nextToken()
	cond := p.parseExpression(0)
	if !p.expect(token.DO, "do", true) {
		p.synchronize()
		return &ast.While{Token: whileTok, Cond: cond}
	}
	return &ast.While{Token: whileTok, Cond: cond, Body: p.parseStatement()}
}

func (p *Parser) parseForStatement() *ast.For {
	forTok := p.curToken
	p.nextToken()
	if !p.expectCategory(token.IDENTIFIER, "an identifier", false) {
		p.synchronize()
		return &ast.For{Token: forTok}
	}
	ctrl := p.curToken.Text
	p.nextToken()
	if !p.expect(token.ASSIGN, ":=", true) {
		p.synchronize()
		return &ast.For{Token: forTok, ControlVar: ctrl}
	}
	start := p.parseExpression(0)

	down := false
	switch p.curToken.Kind {
	case token.TO:
		p.nextToken()
	case token.DOWNTO:
		down = true
		p.nextToken()
	default:
		p.errorf("expected %q or %q, found %q", "to", "downto", p.curToken.Lexeme)
		p.synchronize()
		return &ast.For{Token: forTok, ControlVar: ctrl, Start: start}
	}
	end := p.parseExpression(0)
	if !p.expect(token.DO, "do", true) {
		p.synchronize()
		return &ast.For{Token: forTok, ControlVar: ctrl, Start: start, End: end, Down: down}
	}
	return &ast.For{Token: forTok, ControlVar: ctrl, Start: start, End: end, Down: down, Body: p.parseStatement()}
}

func (p *Parser) parseRepeatStatement() *ast.Repeat {
	repeatTok := p.curToken
	p.nextToken()

	var statements []ast.Expr
	for {
		if p.curToken.Kind == token.UNTIL || p.curToken.Category == token.ENDOFFILE {
			break
		}
		if stmt := p.parseStatement(); stmt != nil {
			statements = append(statements, stmt)
		}
		if p.validate(token.SEMICOLON, true) {
			continue
		}
		break
	}
	body := &ast.Block{Token: repeatTok, Statements: statements}
	if !p.expect(token.UNTIL, "until", true) {
		p.synchronize()
		return &ast.Repeat{Token: repeatTok, Body: body}
	}
	return &ast.Repeat{Token: repeatTok, Body: body, Cond: p.parseExpression(0)}
}

func (p *Parser) parseCaseStatement() *ast.CaseStatement {
	caseTok := p.curToken
	p.nextToken()
	selector := p.parseExpression(0)
	if !p.expect(token.OF, "of", true) {
		p.synchronize()
		return &ast.CaseStatement{Token: caseTok, Selector: selector}
	}

	var branches []ast.CaseBranch
	for p.curToken.Kind != token.END && p.curToken.Kind != token.ELSE && p.curToken.Category != token.ENDOFFILE {
		var labels []ast.Expr
		for {
			labels = append(labels, p.parseExpression(0))
			if p.validate(token.COMMA, true) {
				continue
			}
			break
		}
		if !p.expect(token.COLON, ":", true) {
			p.synchronize()
			break
		}
		stmt := p.parseStatement()
		branches = append(branches, ast.CaseBranch{Labels: labels, Statement: stmt})
		if !p.validate(token.SEMICOLON, true) {
			break
		}
	}

	var elseStmt ast.Expr
	if p.validate(token.ELSE, true) {
		elseStmt = p.parseStatement()
	}
	if !p.expect(token.END, "end", true) {
		p.synchronize()
	}
	return &ast.CaseStatement{Token: caseTok, Selector: selector, Branches: branches, Else: elseStmt}
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	withTok := p.curToken
	p.nextToken()
	record := p.parseExpression(0)
	if !p.expect(token.DO, "do", true) {
		p.synchronize()
		return &ast.WithStatement{Token: withTok, Record: record}
	}
	return &ast.WithStatement{Token: withTok, Record: record, Body: p.parseStatement()}
}
