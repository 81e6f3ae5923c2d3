package ast

import (
	"github.com/compiscript/compiscript/internal/token"
)

// IfStatement represents `if (cond) { ... } else { ... }`.
type IfStatement struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when there is no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// WhileStatement represents `while (cond) { ... }`.
type WhileStatement struct {
	Token     token.Token // The 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

// DoWhileStatement represents `do { ... } while (cond);`.
type DoWhileStatement struct {
	Token     token.Token // The 'do' token
	Body      *BlockStatement
	Condition Expression
}

func (dw *DoWhileStatement) statementNode()       {}
func (dw *DoWhileStatement) TokenLiteral() string { return dw.Token.Lexeme }
func (dw *DoWhileStatement) GetToken() token.Token {
	if dw == nil {
		return token.Token{}
	}
	return dw.Token
}

// ForStatement represents `for (init; cond; step) { ... }`.
// Init is a variable declaration or an expression statement; all three
// header slots may be empty.
type ForStatement struct {
	Token     token.Token // The 'for' token
	Init      Statement
	Condition Expression
	Step      Expression
	Body      *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// ForeachStatement represents `foreach (name in iterable) { ... }`.
type ForeachStatement struct {
	Token    token.Token // The 'foreach' token
	Name     *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForeachStatement) statementNode()       {}
func (fs *ForeachStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForeachStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// SwitchCase is one `case expr: statements` arm.
type SwitchCase struct {
	Token      token.Token // The 'case' token
	Condition  Expression
	Statements []Statement
}

func (sc *SwitchCase) GetToken() token.Token {
	if sc == nil {
		return token.Token{}
	}
	return sc.Token
}

// DefaultCase is the `default: statements` arm.
type DefaultCase struct {
	Token      token.Token // The 'default' token
	Statements []Statement
}

func (dc *DefaultCase) GetToken() token.Token {
	if dc == nil {
		return token.Token{}
	}
	return dc.Token
}

// SwitchStatement represents `switch (control) { cases default }`.
type SwitchStatement struct {
	Token   token.Token // The 'switch' token
	Control Expression
	Cases   []*SwitchCase
	Default *DefaultCase // nil when absent
}

func (ss *SwitchStatement) statementNode()       {}
func (ss *SwitchStatement) TokenLiteral() string { return ss.Token.Lexeme }
func (ss *SwitchStatement) GetToken() token.Token {
	if ss == nil {
		return token.Token{}
	}
	return ss.Token
}

// BreakStatement represents `break;`.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// ContinueStatement represents `continue;`.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Token
}

// ReturnStatement represents `return expr?;`.
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expression  // nil for a bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

// TryCatchStatement represents `try { ... } catch (err) { ... }`.
type TryCatchStatement struct {
	Token   token.Token // The 'try' token
	Try     *BlockStatement
	ErrName *Identifier
	Catch   *BlockStatement
}

func (ts *TryCatchStatement) statementNode()       {}
func (ts *TryCatchStatement) TokenLiteral() string { return ts.Token.Lexeme }
func (ts *TryCatchStatement) GetToken() token.Token {
	if ts == nil {
		return token.Token{}
	}
	return ts.Token
}
