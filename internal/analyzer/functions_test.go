package analyzer

import (
	"testing"

	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"
)

func TestFreeCallChecksArity(t *testing.T) {
	expectError(t, `
function suma(a: integer, b: integer): integer { return a + b; }
suma(1);
`, diagnostics.ErrCall)
}

func TestFreeCallChecksArgumentTypes(t *testing.T) {
	expectError(t, `
function suma(a: integer, b: integer): integer { return a + b; }
suma(1, "dos");
`, diagnostics.ErrCall)
}

func TestFreeCallResultType(t *testing.T) {
	expectNoErrors(t, `
function suma(a: integer, b: integer): integer { return a + b; }
let r: integer = suma(1, 2);
`)
}

func TestCallOnNonFunction(t *testing.T) {
	expectError(t, `
let x: integer = 5;
x(1);
`, diagnostics.ErrCall)
}

func TestCallUndefinedReportsUndef(t *testing.T) {
	input := `nada();`
	expectCodes(t, input, diagnostics.ErrUndef, diagnostics.ErrCall)
}

func TestMissingReturnInNonVoidFunction(t *testing.T) {
	expectError(t, `function f(): integer { let x: integer = 1; }`, diagnostics.ErrReturn)
}

func TestVoidFunctionNeedsNoReturn(t *testing.T) {
	expectNoErrors(t, `function f() { let x: integer = 1; }`)
}

func TestFunctionRedeclaration(t *testing.T) {
	expectError(t, `
function f() { }
function f() { }
`, diagnostics.ErrRedecl)
}

func TestParameterRedeclarationInsideBody(t *testing.T) {
	expectError(t, `function f(a: integer) { let a: integer = 1; }`, diagnostics.ErrRedecl)
}

func TestNestedFunctionRecordedOnOuterSymbol(t *testing.T) {
	scopes := expectNoErrors(t, `
function externa(): integer {
  function interna(x: integer): integer { return x * 2; }
  return interna(21);
}
`)
	outer, ok := scopes.Root().Resolve("externa").(*symbols.Function)
	if !ok {
		t.Fatal("externa should be a function symbol")
	}
	inner, ok := outer.Nested["interna"]
	if !ok {
		t.Fatal("interna should be recorded in externa's nested map")
	}
	if got := inner.Type.String(); got != "(integer) -> integer" {
		t.Errorf("interna : %s", got)
	}
	if len(outer.NestedOrder) != 1 || outer.NestedOrder[0] != "interna" {
		t.Errorf("nested order = %v", outer.NestedOrder)
	}
}

func TestClosureCapturesDeclarationScope(t *testing.T) {
	// The captured name lives in the function's declaration scope; calling
	// the function from elsewhere must keep it resolvable during checking.
	expectNoErrors(t, `
function contador(): integer {
  let base: integer = 10;
  function incrementa(n: integer): integer { return n + 1; }
  return incrementa(base);
}
let r: integer = contador();
`)
}

func TestClosureScopeRestoredAfterCall(t *testing.T) {
	_, scopes := analyzeSource(`
function f(): integer { return 1; }
let a: integer = f();
let b: integer = f();
`)
	if scopes.Depth() != 1 {
		t.Fatalf("stack depth = %d, want 1", scopes.Depth())
	}
}

func TestFunctionIdentifierHasFunctionType(t *testing.T) {
	scopes := expectNoErrors(t, `function f(a: integer): string { return "x"; }`)
	sym := scopes.Root().Resolve("f")
	if got := sym.SymbolType().String(); got != "(integer) -> string" {
		t.Errorf("f : %s", got)
	}
}
