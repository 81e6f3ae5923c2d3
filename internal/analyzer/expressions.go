package analyzer

import (
	"fmt"

	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/config"
	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"
	"github.com/compiscript/compiscript/internal/typesystem"
)

// checkExpression computes the type of an expression, reporting every rule
// violation it finds. It never returns nil: unresolved expressions type as
// void so traversal continues.
func (a *Analyzer) checkExpression(expr ast.Expression) typesystem.Type {
	if expr == nil {
		return typesystem.Void
	}

	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return typesystem.Integer
	case *ast.StringLiteral:
		return typesystem.String
	case *ast.BooleanLiteral:
		return typesystem.Boolean
	case *ast.NullLiteral:
		return typesystem.Null
	case *ast.ArrayLiteral:
		return a.checkArrayLiteral(e)
	case *ast.Identifier:
		return a.checkIdentifier(e)
	case *ast.ThisExpression:
		return a.checkThisExpression(e)
	case *ast.NewExpression:
		return a.checkNewExpression(e)
	case *ast.PrefixExpression:
		return a.checkPrefixExpression(e)
	case *ast.InfixExpression:
		return a.checkInfixExpression(e)
	case *ast.TernaryExpression:
		return a.checkTernaryExpression(e)
	case *ast.AssignExpression:
		return a.checkAssignExpression(e)
	case *ast.PropertyExpression:
		return a.checkPropertyExpression(e)
	case *ast.IndexExpression:
		return a.checkIndexExpression(e)
	case *ast.CallExpression:
		return a.checkCallExpression(e)
	}
	return typesystem.Void
}

// checkIdentifier types a bare name. The primitive type names act as type
// literals in expression position and never produce E_UNDEF. A resolved
// function yields its function type; call checking unwraps it.
func (a *Analyzer) checkIdentifier(e *ast.Identifier) typesystem.Type {
	switch e.Value {
	case typesystem.IntegerName:
		return typesystem.Integer
	case typesystem.StringName:
		return typesystem.String
	case typesystem.BooleanName:
		return typesystem.Boolean
	case typesystem.VoidName:
		return typesystem.Void
	}

	sym := a.resolveSymbol(e.Value, e.GetToken())
	if sym == nil {
		return typesystem.Void
	}
	return sym.SymbolType()
}

func (a *Analyzer) checkArrayLiteral(e *ast.ArrayLiteral) typesystem.Type {
	if len(e.Elements) == 0 {
		return typesystem.MakeArray(typesystem.Void, 1)
	}

	elems := make([]typesystem.Type, len(e.Elements))
	for i, el := range e.Elements {
		elems[i] = a.checkExpression(el)
	}

	// A literal whose elements are all arrays nests one dimension deeper.
	allArrays := true
	for _, t := range elems {
		if _, ok := t.(typesystem.TArray); !ok {
			allArrays = false
			break
		}
	}
	if allArrays {
		first := elems[0].(typesystem.TArray)
		return typesystem.TArray{Elem: first.Elem, Dims: first.Dims + 1}
	}

	elemType := elems[0]
	for _, t := range elems[1:] {
		if !(typesystem.CanAssign(elemType, t) && typesystem.CanAssign(t, elemType)) {
			a.report(e.GetToken(), diagnostics.ErrArrayElem, elemType, t)
		}
	}
	return typesystem.MakeArray(elemType, 1)
}

func (a *Analyzer) checkThisExpression(e *ast.ThisExpression) typesystem.Type {
	if a.currentClass == "" {
		a.report(e.GetToken(), diagnostics.ErrThis)
		return typesystem.Void
	}
	return typesystem.TCon{Name: a.currentClass}
}

func (a *Analyzer) checkNewExpression(e *ast.NewExpression) typesystem.Type {
	tok := e.GetToken()
	className := e.ClassName.Value

	sym := a.scopes.Current().Resolve(className)
	cls, ok := sym.(*symbols.Class)
	if !ok {
		a.report(tok, diagnostics.ErrNew, fmt.Sprintf("Clase no definida: %s", className))
		return typesystem.Void
	}

	args := make([]typesystem.Type, len(e.Arguments))
	for i, arg := range e.Arguments {
		args[i] = a.checkExpression(arg)
	}

	ctor := a.lookupMethod(cls, config.ConstructorName)
	if ctor != nil {
		if len(args) != len(ctor.Params) {
			a.report(tok, diagnostics.ErrNew,
				fmt.Sprintf("Número incorrecto de argumentos al construir %s", className))
		} else {
			for i, param := range ctor.Params {
				if !typesystem.CanAssign(param.Type, args[i]) {
					a.report(tok, diagnostics.ErrNew,
						fmt.Sprintf("Argumento %d incompatible en constructor de %s: %s, se esperaba %s",
							i, className, args[i], param.Type))
				}
			}
		}
	} else if len(args) > 0 {
		a.report(tok, diagnostics.ErrNew,
			fmt.Sprintf("Clase %s no tiene constructor que reciba argumentos", className))
	}

	return typesystem.TCon{Name: className}
}

func (a *Analyzer) checkPrefixExpression(e *ast.PrefixExpression) typesystem.Type {
	operandType := a.checkExpression(e.Right)
	switch e.Operator {
	case "-":
		if !typesystem.IsNumeric(operandType) {
			a.report(e.GetToken(), diagnostics.ErrUnary, "-", "integer", operandType)
			return typesystem.Void
		}
		return operandType
	case "!":
		if !typesystem.IsBoolean(operandType) {
			a.report(e.GetToken(), diagnostics.ErrUnary, "!", "boolean", operandType)
			return typesystem.Void
		}
		return operandType
	}
	return typesystem.Void
}

func (a *Analyzer) checkInfixExpression(e *ast.InfixExpression) typesystem.Type {
	lhs := a.checkExpression(e.Left)
	rhs := a.checkExpression(e.Right)
	tok := e.GetToken()

	switch e.Operator {
	case "+", "-":
		if result := typesystem.ArithmeticType(e.Operator, lhs, rhs); result != nil {
			return result
		}
		a.report(tok, diagnostics.ErrAdd, lhs, rhs)
	case "*", "/", "%":
		if result := typesystem.ArithmeticType(e.Operator, lhs, rhs); result != nil {
			return result
		}
		a.report(tok, diagnostics.ErrMul, lhs, rhs)
	case "<", "<=", ">", ">=":
		if result := typesystem.OrderingType(lhs, rhs); result != nil {
			return result
		}
		a.report(tok, diagnostics.ErrRel, lhs, rhs)
	case "==", "!=":
		if result := typesystem.EqualityType(lhs, rhs); result != nil {
			return result
		}
		a.report(tok, diagnostics.ErrEq, lhs, rhs)
	case "&&":
		if result := typesystem.LogicalType(lhs, rhs); result != nil {
			return result
		}
		a.report(tok, diagnostics.ErrAnd, lhs, rhs)
	case "||":
		if result := typesystem.LogicalType(lhs, rhs); result != nil {
			return result
		}
		a.report(tok, diagnostics.ErrOr, lhs, rhs)
	}
	return typesystem.Void
}

func (a *Analyzer) checkTernaryExpression(e *ast.TernaryExpression) typesystem.Type {
	condType := a.checkExpression(e.Condition)
	if !typesystem.IsBoolean(condType) {
		a.report(e.GetToken(), diagnostics.ErrTernary, condType)
	}
	thenType := a.checkExpression(e.Consequence)
	elseType := a.checkExpression(e.Alternative)

	if typesystem.CanAssign(thenType, elseType) {
		return thenType
	}
	if typesystem.CanAssign(elseType, thenType) {
		return elseType
	}
	return typesystem.Void
}

func (a *Analyzer) checkAssignExpression(e *ast.AssignExpression) typesystem.Type {
	if prop, ok := e.Target.(*ast.PropertyExpression); ok {
		return a.checkPropertyAssign(e, prop)
	}

	targetType := a.checkExpression(e.Target)
	valueType := a.checkExpression(e.Value)

	if !typesystem.CanAssign(targetType, valueType) {
		a.report(e.GetToken(), diagnostics.ErrAssign, valueType, targetType)
	}
	return targetType
}

// checkPropertyAssign handles `obj.name = value`. The assignability check
// only applies when the member resolves; assignments through unknown
// members keep the observed silent behavior and take the value's type.
func (a *Analyzer) checkPropertyAssign(e *ast.AssignExpression, prop *ast.PropertyExpression) typesystem.Type {
	objType := a.checkExpression(prop.Object)
	valueType := a.checkExpression(e.Value)

	if con, ok := objType.(typesystem.TCon); ok {
		if cls := a.resolveClass(con.Name); cls != nil {
			if memberType, found := a.lookupMember(cls, prop.Property.Value); found {
				if !typesystem.CanAssign(memberType, valueType) {
					a.report(e.GetToken(), diagnostics.ErrAssign, valueType, memberType)
				}
				return memberType
			}
		}
	}
	if a.strictProps {
		a.report(prop.GetToken(), diagnostics.ErrPropUndef, prop.Property.Value, objType)
	}
	return valueType
}

// checkPropertyExpression types `obj.name` by walking the owning class and
// its base chain. Unknown members type as void; E_PROP_UNDEF only fires in
// strict mode.
func (a *Analyzer) checkPropertyExpression(e *ast.PropertyExpression) typesystem.Type {
	objType := a.checkExpression(e.Object)

	if con, ok := objType.(typesystem.TCon); ok {
		if cls := a.resolveClass(con.Name); cls != nil {
			if memberType, found := a.lookupMember(cls, e.Property.Value); found {
				return memberType
			}
		}
	}
	if a.strictProps {
		a.report(e.GetToken(), diagnostics.ErrPropUndef, e.Property.Value, objType)
	}
	return typesystem.Void
}

func (a *Analyzer) checkIndexExpression(e *ast.IndexExpression) typesystem.Type {
	tok := e.GetToken()
	leftType := a.checkExpression(e.Left)
	indexType := a.checkExpression(e.Index)

	if !typesystem.IsNumeric(indexType) {
		a.report(tok, diagnostics.ErrIndex,
			fmt.Sprintf("Índice debe ser integer, no %s", indexType))
	}

	arr, ok := leftType.(typesystem.TArray)
	if !ok {
		a.report(tok, diagnostics.ErrIndex,
			fmt.Sprintf("El objeto %s no es indexable", leftType))
		return typesystem.Void
	}
	return typesystem.MakeArray(arr.Elem, arr.Dims-1)
}

func (a *Analyzer) checkCallExpression(e *ast.CallExpression) typesystem.Type {
	switch callee := e.Callee.(type) {
	case *ast.Identifier:
		return a.checkFreeCall(e, callee)
	case *ast.PropertyExpression:
		return a.checkMethodCall(e, callee)
	}
	a.report(e.GetToken(), diagnostics.ErrCall, "Llamada inválida")
	return typesystem.Void
}

// checkFreeCall validates a call whose callee is a bare identifier. The
// function's closure scope is pushed during parameter checking so names
// captured at the declaration site stay resolvable.
func (a *Analyzer) checkFreeCall(e *ast.CallExpression, callee *ast.Identifier) typesystem.Type {
	tok := e.GetToken()

	args := make([]typesystem.Type, len(e.Arguments))
	for i, arg := range e.Arguments {
		args[i] = a.checkExpression(arg)
	}

	sym := a.resolveSymbol(callee.Value, callee.GetToken())
	fsym, ok := sym.(*symbols.Function)
	if !ok {
		a.report(tok, diagnostics.ErrCall,
			fmt.Sprintf("%s no es una función", callee.Value))
		return typesystem.Void
	}

	if fsym.ClosureScope != nil {
		a.scopes.PushChild(fsym.ClosureScope)
	}

	if len(args) != len(fsym.Params) {
		a.report(tok, diagnostics.ErrCall,
			fmt.Sprintf("Número incorrecto de argumentos en %s", fsym.Name))
	} else {
		for i, param := range fsym.Params {
			if !typesystem.CanAssign(param.Type, args[i]) {
				a.report(tok, diagnostics.ErrCall,
					fmt.Sprintf("Argumento %d incompatible: %s, se esperaba %s",
						i, args[i], param.Type))
			}
		}
	}

	if fsym.ClosureScope != nil {
		a.scopes.Pop()
	}

	return fsym.Type.Ret
}

// checkMethodCall validates `obj.m(args)`: the receiver must type as a
// class and the method is looked up through the base chain.
func (a *Analyzer) checkMethodCall(e *ast.CallExpression, callee *ast.PropertyExpression) typesystem.Type {
	tok := e.GetToken()
	methodName := callee.Property.Value

	objType := a.checkExpression(callee.Object)
	args := make([]typesystem.Type, len(e.Arguments))
	for i, arg := range e.Arguments {
		args[i] = a.checkExpression(arg)
	}

	con, ok := objType.(typesystem.TCon)
	if !ok {
		a.report(tok, diagnostics.ErrCall,
			fmt.Sprintf("%s no es un objeto válido", objType))
		return typesystem.Void
	}
	cls := a.resolveClass(con.Name)
	if cls == nil {
		a.report(tok, diagnostics.ErrCall,
			fmt.Sprintf("%s no es una clase válida", con.Name))
		return typesystem.Void
	}

	method := a.lookupMethod(cls, methodName)
	if method == nil {
		a.report(tok, diagnostics.ErrCall,
			fmt.Sprintf("Método %s no definido en %s", methodName, con.Name))
		return typesystem.Void
	}

	if len(args) != len(method.Params) {
		a.report(tok, diagnostics.ErrCall,
			fmt.Sprintf("Número incorrecto de argumentos en %s.%s", con.Name, methodName))
	} else {
		for i, param := range method.Params {
			if !typesystem.CanAssign(param.Type, args[i]) {
				a.report(tok, diagnostics.ErrCall,
					fmt.Sprintf("Argumento %d incompatible en %s.%s: %s, se esperaba %s",
						i, con.Name, methodName, args[i], param.Type))
			}
		}
	}

	return method.Type.Ret
}
