package analyzer

import (
	"fmt"

	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"
	"github.com/compiscript/compiscript/internal/typesystem"
)

func (a *Analyzer) checkVariableDeclaration(vd *ast.VariableDeclaration) {
	tok := vd.GetToken()
	vtype := a.typeFromAnnotation(vd.TypeAnnotation)
	sym := &symbols.Variable{
		Name: vd.Name.Value,
		Type: vtype,
		Line: tok.Line,
		Col:  tok.Column,
	}

	if vd.Value != nil {
		initType := a.checkExpression(vd.Value)
		switch {
		case vd.TypeAnnotation == nil:
			// Literal typing: an unannotated declaration takes the type of
			// its initializer.
			sym.Type = initType
			sym.IsInitialized = true
		case !typesystem.CanAssign(vtype, initType):
			a.report(tok, diagnostics.ErrAssign, initType, vtype)
		default:
			sym.IsInitialized = true
		}
	}

	a.defineSymbol(sym, tok)
}

func (a *Analyzer) checkConstantDeclaration(cd *ast.ConstantDeclaration) {
	tok := cd.GetToken()
	ctype := a.typeFromAnnotation(cd.TypeAnnotation)
	sym := &symbols.Variable{
		Name:          cd.Name.Value,
		Type:          ctype,
		IsConst:       true,
		IsInitialized: true,
		Line:          tok.Line,
		Col:           tok.Column,
	}

	initType := typesystem.Type(typesystem.Void)
	if cd.Value != nil {
		initType = a.checkExpression(cd.Value)
	}
	if cd.TypeAnnotation == nil && cd.Value != nil {
		sym.Type = initType
	} else if !typesystem.CanAssign(ctype, initType) {
		a.report(tok, diagnostics.ErrAssign, initType, ctype)
	}

	a.defineSymbol(sym, tok)
}

// buildFunctionSymbol constructs the function symbol for a declaration:
// parameter symbols in declared order with zero-based indices, and the
// function type from the annotations.
func (a *Analyzer) buildFunctionSymbol(fd *ast.FunctionDeclaration) *symbols.Function {
	tok := fd.GetToken()
	retType := a.typeFromAnnotation(fd.ReturnType)

	params := make([]*symbols.Parameter, 0, len(fd.Params))
	paramTypes := make([]typesystem.Type, 0, len(fd.Params))
	for i, p := range fd.Params {
		ptok := p.GetToken()
		ptype := a.typeFromAnnotation(p.TypeAnnotation)
		params = append(params, &symbols.Parameter{
			Name:  p.Name.Value,
			Type:  ptype,
			Index: i,
			Line:  ptok.Line,
			Col:   ptok.Column,
		})
		paramTypes = append(paramTypes, ptype)
	}

	return &symbols.Function{
		Name:   fd.Name.Value,
		Type:   typesystem.MakeFunc(paramTypes, retType),
		Params: params,
		Line:   tok.Line,
		Col:    tok.Column,
	}
}

func (a *Analyzer) checkFunctionDeclaration(fd *ast.FunctionDeclaration) {
	fsym := a.buildFunctionSymbol(fd)
	fsym.ClosureScope = a.scopes.Current()
	a.defineSymbol(fsym, fd.GetToken())

	// A function declared inside another function is also recorded in the
	// enclosing function symbol's nested map.
	parent := a.scopes.Current()
	if parent.Kind == symbols.FunctionScope && parent.Name != "" {
		if outer, ok := parent.Resolve(parent.Name).(*symbols.Function); ok {
			outer.AddNested(fsym)
		}
	}

	a.checkFunctionBody(fsym, fd)
}

// checkFunctionBody pushes the function scope, defines the parameters,
// walks the body, and validates the collected return types against the
// declared return type.
func (a *Analyzer) checkFunctionBody(fsym *symbols.Function, fd *ast.FunctionDeclaration) {
	tok := fd.GetToken()
	retType := fsym.Type.Ret

	a.scopes.PushFunction(retType, fsym.Name)
	for i, psym := range fsym.Params {
		a.defineSymbol(psym, fd.Params[i].GetToken())
	}

	var returns []typesystem.Type
	if fd.Body != nil {
		returns = a.checkBlockStatements(fd.Body.Statements)
	}
	a.scopes.Pop()

	if len(returns) == 0 && !typesystem.IsVoid(retType) {
		a.report(tok, diagnostics.ErrReturn,
			fmt.Sprintf("Función %s sin return pero declarada %s", fsym.Name, retType))
	}
	for _, rt := range returns {
		if !typesystem.CanAssign(retType, rt) {
			a.report(tok, diagnostics.ErrReturn,
				fmt.Sprintf("Return %s incompatible con %s", rt, retType))
		}
	}
}

func (a *Analyzer) checkClassDeclaration(cd *ast.ClassDeclaration) {
	tok := cd.GetToken()
	csym := symbols.NewClass(cd.Name.Value, tok.Line, tok.Column)
	if cd.Base != nil {
		csym.Base = cd.Base.Value
	}
	a.defineSymbol(csym, tok)

	prev := a.currentClass
	a.currentClass = csym.Name
	a.scopes.PushClass(csym.Name)

	for _, member := range cd.Members {
		switch m := member.(type) {
		case *ast.FunctionDeclaration:
			fsym := a.buildFunctionSymbol(m)
			csym.AddMethod(fsym)
			a.checkFunctionBody(fsym, m)
		case *ast.VariableDeclaration:
			mtok := m.GetToken()
			fieldSym := &symbols.Variable{
				Name: m.Name.Value,
				Type: a.typeFromAnnotation(m.TypeAnnotation),
				Line: mtok.Line,
				Col:  mtok.Column,
			}
			csym.AddField(fieldSym)
			a.defineSymbol(fieldSym, mtok)
		case *ast.ConstantDeclaration:
			mtok := m.GetToken()
			fieldSym := &symbols.Variable{
				Name:          m.Name.Value,
				Type:          a.typeFromAnnotation(m.TypeAnnotation),
				IsConst:       true,
				IsInitialized: true,
				Line:          mtok.Line,
				Col:           mtok.Column,
			}
			csym.AddField(fieldSym)
			a.defineSymbol(fieldSym, mtok)
		}
	}

	a.scopes.Pop()
	a.currentClass = prev
}
