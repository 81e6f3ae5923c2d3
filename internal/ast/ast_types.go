package ast

import (
	"strings"

	"github.com/compiscript/compiscript/internal/token"
)

// TypeAnnotation is a type written in source: a base type name followed by
// zero or more `[]` bracket pairs.
type TypeAnnotation struct {
	Token token.Token // The base type name token
	Name  string
	Dims  int
}

func (ta *TypeAnnotation) GetToken() token.Token {
	if ta == nil {
		return token.Token{}
	}
	return ta.Token
}

func (ta *TypeAnnotation) String() string {
	if ta == nil {
		return ""
	}
	return ta.Name + strings.Repeat("[]", ta.Dims)
}
