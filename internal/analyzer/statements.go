package analyzer

import (
	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"
	"github.com/compiscript/compiscript/internal/typesystem"
)

// checkStatement visits one statement. It returns a non-nil type only for
// return statements, so block walkers can collect return types.
func (a *Analyzer) checkStatement(stmt ast.Statement) typesystem.Type {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		a.checkVariableDeclaration(s)
	case *ast.ConstantDeclaration:
		a.checkConstantDeclaration(s)
	case *ast.FunctionDeclaration:
		a.checkFunctionDeclaration(s)
	case *ast.ClassDeclaration:
		a.checkClassDeclaration(s)
	case *ast.ExpressionStatement:
		if s.Expression != nil {
			a.checkExpression(s.Expression)
		}
	case *ast.BlockStatement:
		// Plain blocks do not open a scope: declarations land in the
		// enclosing scope.
		a.checkBlockStatements(s.Statements)
	case *ast.IfStatement:
		a.checkIfStatement(s)
	case *ast.WhileStatement:
		a.checkWhileStatement(s)
	case *ast.DoWhileStatement:
		a.checkDoWhileStatement(s)
	case *ast.ForStatement:
		a.checkForStatement(s)
	case *ast.ForeachStatement:
		a.checkForeachStatement(s)
	case *ast.SwitchStatement:
		a.checkSwitchStatement(s)
	case *ast.BreakStatement:
		if !a.scopes.Inside(symbols.LoopScope) && !a.scopes.Inside(symbols.SwitchScope) {
			a.report(s.GetToken(), diagnostics.ErrBreak)
		}
	case *ast.ContinueStatement:
		if !a.scopes.Inside(symbols.LoopScope) {
			a.report(s.GetToken(), diagnostics.ErrContinue)
		}
	case *ast.ReturnStatement:
		return a.checkReturnStatement(s)
	case *ast.TryCatchStatement:
		a.checkTryCatchStatement(s)
	}
	return nil
}

// checkBlockStatements walks a statement list, marking everything after a
// return, break or continue as dead code. It returns the types of the
// return statements that appear directly in the list.
func (a *Analyzer) checkBlockStatements(stmts []ast.Statement) []typesystem.Type {
	var returns []typesystem.Type
	terminated := false

	for _, stmt := range stmts {
		if terminated {
			a.report(stmt.GetToken(), diagnostics.ErrDeadCode)
		}
		rt := a.checkStatement(stmt)

		switch stmt.(type) {
		case *ast.ReturnStatement:
			if rt == nil {
				rt = typesystem.Void
			}
			returns = append(returns, rt)
			terminated = true
		case *ast.BreakStatement, *ast.ContinueStatement:
			terminated = true
		}
	}
	return returns
}

func (a *Analyzer) checkReturnStatement(rs *ast.ReturnStatement) typesystem.Type {
	retType := typesystem.Type(typesystem.Void)
	if rs.Value != nil {
		retType = a.checkExpression(rs.Value)
	}

	if fn := a.scopes.Enclosing(symbols.FunctionScope); fn != nil {
		fn.HasReturn = true
	} else {
		a.report(rs.GetToken(), diagnostics.ErrReturnOut)
	}
	return retType
}

func (a *Analyzer) checkIfStatement(s *ast.IfStatement) {
	condType := a.checkExpression(s.Condition)
	if !typesystem.IsBoolean(condType) {
		a.report(s.GetToken(), diagnostics.ErrIf, condType)
	}
	if s.Consequence != nil {
		a.checkBlockStatements(s.Consequence.Statements)
	}
	if s.Alternative != nil {
		a.checkBlockStatements(s.Alternative.Statements)
	}
}

func (a *Analyzer) checkWhileStatement(s *ast.WhileStatement) {
	condType := a.checkExpression(s.Condition)
	if !typesystem.IsBoolean(condType) {
		a.report(s.GetToken(), diagnostics.ErrWhile, condType)
	}
	a.scopes.Push(symbols.LoopScope)
	if s.Body != nil {
		a.checkBlockStatements(s.Body.Statements)
	}
	a.scopes.Pop()
}

func (a *Analyzer) checkDoWhileStatement(s *ast.DoWhileStatement) {
	a.scopes.Push(symbols.LoopScope)
	if s.Body != nil {
		a.checkBlockStatements(s.Body.Statements)
	}
	a.scopes.Pop()

	condType := a.checkExpression(s.Condition)
	if !typesystem.IsBoolean(condType) {
		a.report(s.GetToken(), diagnostics.ErrDoWhile, condType)
	}
}

func (a *Analyzer) checkForStatement(s *ast.ForStatement) {
	a.scopes.Push(symbols.LoopScope)

	if s.Init != nil {
		a.checkStatement(s.Init)
	}
	if s.Condition != nil {
		condType := a.checkExpression(s.Condition)
		if !typesystem.IsBoolean(condType) {
			a.report(s.GetToken(), diagnostics.ErrFor, condType)
		}
	}
	if s.Step != nil {
		a.checkExpression(s.Step)
	}

	if s.Body != nil {
		a.checkBlockStatements(s.Body.Statements)
	}
	a.scopes.Pop()
}

func (a *Analyzer) checkForeachStatement(s *ast.ForeachStatement) {
	tok := s.GetToken()
	iterType := a.checkExpression(s.Iterable)

	elemType := typesystem.Type(typesystem.Void)
	if arr, ok := iterType.(typesystem.TArray); ok {
		elemType = typesystem.MakeArray(arr.Elem, arr.Dims-1)
	} else {
		a.report(tok, diagnostics.ErrForeach, iterType)
	}

	// The iteration variable lives in the enclosing scope, before the loop
	// scope opens.
	a.defineSymbol(&symbols.Variable{
		Name:          s.Name.Value,
		Type:          elemType,
		IsInitialized: true,
		Line:          tok.Line,
		Col:           tok.Column,
	}, tok)

	a.scopes.Push(symbols.LoopScope)
	if s.Body != nil {
		a.checkBlockStatements(s.Body.Statements)
	}
	a.scopes.Pop()
}

func (a *Analyzer) checkSwitchStatement(s *ast.SwitchStatement) {
	controlType := a.checkExpression(s.Control)
	a.scopes.Push(symbols.SwitchScope)

	for _, c := range s.Cases {
		caseType := a.checkExpression(c.Condition)
		if !typesystem.CanAssign(controlType, caseType) {
			a.report(s.GetToken(), diagnostics.ErrSwitch, caseType, controlType)
		}
		a.checkBlockStatements(c.Statements)
	}
	if s.Default != nil {
		a.checkBlockStatements(s.Default.Statements)
	}

	a.scopes.Pop()
}

func (a *Analyzer) checkTryCatchStatement(s *ast.TryCatchStatement) {
	if s.Try != nil {
		a.checkBlockStatements(s.Try.Statements)
	}

	a.scopes.Push(symbols.CatchScope)
	tok := s.GetToken()
	if s.ErrName != nil {
		a.defineSymbol(&symbols.Variable{
			Name:          s.ErrName.Value,
			Type:          typesystem.String,
			IsInitialized: true,
			Line:          tok.Line,
			Col:           tok.Column,
		}, tok)
	}
	if s.Catch != nil {
		a.checkBlockStatements(s.Catch.Statements)
	}
	a.scopes.Pop()
}
