package analyzer

import (
	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"
	"github.com/compiscript/compiscript/internal/token"
	"github.com/compiscript/compiscript/internal/typesystem"
)

// Analyzer walks a parse tree, builds the scope tree, defines typed symbols
// and reports semantic diagnostics. It never stops on an error: every
// analyzable node is visited so one mistake does not hide the next.
type Analyzer struct {
	scopes       *symbols.ScopeStack
	reporter     *diagnostics.Reporter
	currentClass string
	strictProps  bool
}

// New creates an analyzer reporting into the given collector.
func New(reporter *diagnostics.Reporter) *Analyzer {
	return &Analyzer{
		scopes:   symbols.NewScopeStack(),
		reporter: reporter,
	}
}

// SetStrictProps enables the E_PROP_UNDEF diagnostic for unknown property
// accesses. Off by default: unknown properties silently type as void.
func (a *Analyzer) SetStrictProps(on bool) {
	a.strictProps = on
}

// Scopes exposes the scope stack; after Analyze the root holds the full
// scope tree for printing and indexing.
func (a *Analyzer) Scopes() *symbols.ScopeStack {
	return a.scopes
}

// Reporter returns the diagnostic collector.
func (a *Analyzer) Reporter() *diagnostics.Reporter {
	return a.reporter
}

// Analyze checks a whole program. On an empty stack it first pushes the
// global scope, which stays pushed so callers can read the tree; every
// other scope it opens is popped again before it returns.
func (a *Analyzer) Analyze(program *ast.Program) {
	if a.scopes.Empty() {
		a.scopes.Push(symbols.GlobalScope)
	}
	for _, stmt := range program.Statements {
		a.checkStatement(stmt)
	}
}

func (a *Analyzer) report(tok token.Token, code diagnostics.ErrorCode, args ...interface{}) {
	a.reporter.Report(tok.Line, tok.Column, code, args...)
}

// defineSymbol registers sym in the current scope, reporting E_REDECL on a
// duplicate name.
func (a *Analyzer) defineSymbol(sym symbols.Symbol, tok token.Token) {
	if !a.scopes.Current().Define(sym) {
		a.report(tok, diagnostics.ErrRedecl, sym.SymbolName())
	}
}

// resolveSymbol resolves a name through the scope chain, reporting E_UNDEF
// when it is nowhere defined. The primitive type names never resolve to
// symbols and never produce E_UNDEF.
func (a *Analyzer) resolveSymbol(name string, tok token.Token) symbols.Symbol {
	switch name {
	case typesystem.IntegerName, typesystem.StringName, typesystem.BooleanName, typesystem.VoidName:
		return nil
	}
	sym := a.scopes.Current().Resolve(name)
	if sym == nil {
		a.report(tok, diagnostics.ErrUndef, name)
	}
	return sym
}

// typeFromAnnotation turns a source type annotation into a type term.
// A missing annotation is void.
func (a *Analyzer) typeFromAnnotation(ta *ast.TypeAnnotation) typesystem.Type {
	if ta == nil {
		return typesystem.Void
	}
	var elem typesystem.Type
	switch ta.Name {
	case typesystem.IntegerName:
		elem = typesystem.Integer
	case typesystem.StringName:
		elem = typesystem.String
	case typesystem.BooleanName:
		elem = typesystem.Boolean
	case typesystem.VoidName:
		elem = typesystem.Void
	default:
		elem = typesystem.TCon{Name: ta.Name}
	}
	return typesystem.MakeArray(elem, ta.Dims)
}

// resolveClass resolves a name to a class symbol without reporting.
func (a *Analyzer) resolveClass(name string) *symbols.Class {
	if sym := a.scopes.Current().Resolve(name); sym != nil {
		if cls, ok := sym.(*symbols.Class); ok {
			return cls
		}
	}
	return nil
}

// lookupMember walks cls and its base chain for a field or method type.
// The second result reports whether the member was found.
func (a *Analyzer) lookupMember(cls *symbols.Class, name string) (typesystem.Type, bool) {
	for cls != nil {
		if f, ok := cls.Fields[name]; ok {
			return f.Type, true
		}
		if m, ok := cls.Methods[name]; ok {
			return m.Type, true
		}
		if cls.Base == "" {
			return nil, false
		}
		cls = a.resolveClass(cls.Base)
	}
	return nil, false
}

// lookupMethod walks cls and its base chain for a method.
func (a *Analyzer) lookupMethod(cls *symbols.Class, name string) *symbols.Function {
	for cls != nil {
		if m, ok := cls.Methods[name]; ok {
			return m
		}
		if cls.Base == "" {
			return nil
		}
		cls = a.resolveClass(cls.Base)
	}
	return nil
}
