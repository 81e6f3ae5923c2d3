package parser

import (
	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseVariableDeclaration()
	case token.CONST:
		return p.parseConstantDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FOREACH:
		return p.parseForeachStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.BREAK:
		stmt := &ast.BreakStatement{Token: p.curToken}
		p.expectSemicolon()
		return stmt
	case token.CONTINUE:
		stmt := &ast.ContinueStatement{Token: p.curToken}
		p.expectSemicolon()
		return stmt
	case token.RETURN:
		return p.parseReturnStatement()
	case token.TRY:
		return p.parseTryCatchStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

// expectSemicolon consumes the statement terminator when present and records
// a diagnostic otherwise.
func (p *Parser) expectSemicolon() {
	if !p.expectPeek(token.SEMICOLON) {
		p.skipToStatementBoundary()
	}
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	stmt := &ast.VariableDeclaration{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		stmt.TypeAnnotation = p.parseTypeAnnotation()
		if stmt.TypeAnnotation == nil {
			p.skipToStatementBoundary()
			return stmt
		}
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}

	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseConstantDeclaration() ast.Statement {
	stmt := &ast.ConstantDeclaration{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		stmt.TypeAnnotation = p.parseTypeAnnotation()
		if stmt.TypeAnnotation == nil {
			p.skipToStatementBoundary()
			return stmt
		}
	}

	if !p.expectPeek(token.ASSIGN) {
		p.skipToStatementBoundary()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	stmt := &ast.FunctionDeclaration{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Params = p.parseParameters()

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		stmt.ReturnType = p.parseTypeAnnotation()
	}

	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseParameters parses `(name: type, ...)`; the opening paren is current.
func (p *Parser) parseParameters() []*ast.Parameter {
	params := []*ast.Parameter{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	for {
		if !p.expectPeek(token.IDENT) {
			p.skipToStatementBoundary()
			return params
		}
		param := &ast.Parameter{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			param.TypeAnnotation = p.parseTypeAnnotation()
		}
		params = append(params, param)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
	}
	return params
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	stmt := &ast.ClassDeclaration{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			p.skipToStatementBoundary()
			return stmt
		}
		stmt.Base = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	}

	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LET, token.CONST, token.FUNCTION:
			member := p.parseStatement()
			if member != nil {
				stmt.Members = append(stmt.Members, member)
			}
		case token.SEMICOLON:
			// stray separator
		default:
			p.noPrefixParseFnError(p.curToken)
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		p.skipToStatementBoundary()
		return nil
	}
	p.expectSemicolon()
	return stmt
}
