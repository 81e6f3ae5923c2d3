package parser

import (
	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/token"
)

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}

	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			p.skipToStatementBoundary()
			return stmt
		}
		stmt.Alternative = p.parseBlockStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	stmt := &ast.DoWhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	if !p.expectPeek(token.WHILE) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}

	// init: variable declaration, expression statement, or empty
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.nextToken()
		if p.curTokenIs(token.LET) {
			stmt.Init = p.parseVariableDeclaration()
		} else {
			init := &ast.ExpressionStatement{Token: p.curToken}
			init.Expression = p.parseExpression(LOWEST)
			stmt.Init = init
			p.expectSemicolon()
		}
	}

	// condition
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
		p.expectSemicolon()
	}

	// step
	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		stmt.Step = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}

	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseForeachStatement() ast.Statement {
	stmt := &ast.ForeachStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.IN) {
		p.skipToStatementBoundary()
		return stmt
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	stmt := &ast.SwitchStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()
	stmt.Control = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.CASE:
			c := &ast.SwitchCase{Token: p.curToken}
			p.nextToken()
			c.Condition = p.parseExpression(LOWEST)
			if !p.expectPeek(token.COLON) {
				p.skipToStatementBoundary()
			}
			c.Statements = p.parseCaseStatements()
			stmt.Cases = append(stmt.Cases, c)
		case token.DEFAULT:
			d := &ast.DefaultCase{Token: p.curToken}
			if !p.expectPeek(token.COLON) {
				p.skipToStatementBoundary()
			}
			d.Statements = p.parseCaseStatements()
			stmt.Default = d
		default:
			p.noPrefixParseFnError(p.curToken)
			p.nextToken()
		}
	}
	return stmt
}

// parseCaseStatements collects statements until the next case, default or
// closing brace. It leaves the terminator as the current token.
func (p *Parser) parseCaseStatements() []ast.Statement {
	stmts := []ast.Statement{}
	p.nextToken()
	for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) &&
		!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}
	return stmts
}

func (p *Parser) parseTryCatchStatement() ast.Statement {
	stmt := &ast.TryCatchStatement{Token: p.curToken}

	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Try = p.parseBlockStatement()

	if !p.expectPeek(token.CATCH) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.LPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.ErrName = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expectPeek(token.RPAREN) {
		p.skipToStatementBoundary()
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		p.skipToStatementBoundary()
		return stmt
	}
	stmt.Catch = p.parseBlockStatement()
	return stmt
}
