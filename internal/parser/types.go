package parser

import (
	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/token"
)

// parseTypeAnnotation parses a type written after ':' — a base type name
// followed by zero or more `[]` pairs. The ':' is the current token.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	annotation := &ast.TypeAnnotation{Token: p.curToken, Name: p.curToken.Lexeme}

	for p.peekTokenIs(token.LBRACKET) {
		p.nextToken()
		if !p.expectPeek(token.RBRACKET) {
			return annotation
		}
		annotation.Dims++
	}
	return annotation
}
