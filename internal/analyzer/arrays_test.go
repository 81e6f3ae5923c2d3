package analyzer

import (
	"testing"

	"github.com/compiscript/compiscript/internal/diagnostics"
	"github.com/compiscript/compiscript/internal/symbols"
)

func TestArrayLiteralTyping(t *testing.T) {
	scopes := expectNoErrors(t, `let a: integer[] = [1, 2, 3];`)
	sym := scopes.Root().Resolve("a")
	if got := sym.SymbolType().String(); got != "integer[]" {
		t.Errorf("a : %s, want integer[]", got)
	}
}

func TestEmptyArrayLiteral(t *testing.T) {
	_, scopes := analyzeSource(`let a = [];`)
	sym := scopes.Root().Resolve("a")
	if got := sym.SymbolType().String(); got != "void[]" {
		t.Errorf("a : %s, want void[]", got)
	}
}

func TestNestedArrayLiteral(t *testing.T) {
	scopes := expectNoErrors(t, `let m: integer[][] = [[1, 2], [3, 4]];`)
	sym := scopes.Root().Resolve("m")
	if got := sym.SymbolType().String(); got != "integer[][]" {
		t.Errorf("m : %s, want integer[][]", got)
	}
}

func TestHeterogeneousArrayLiteral(t *testing.T) {
	expectError(t, `let a = [1, "dos", 3];`, diagnostics.ErrArrayElem)
}

func TestNullAssignableToArray(t *testing.T) {
	expectNoErrors(t, `let a: integer[] = null;`)
}

func TestIndexIntoMultiDimArray(t *testing.T) {
	scopes := expectNoErrors(t, `
let m: integer[][] = [[1], [2]];
let fila = m[0];
let celda = m[0][1];
`)
	root := scopes.Root()
	if got := root.Resolve("fila").SymbolType().String(); got != "integer[]" {
		t.Errorf("fila : %s, want integer[]", got)
	}
	if got := root.Resolve("celda").SymbolType().String(); got != "integer" {
		t.Errorf("celda : %s, want integer", got)
	}
}

func TestForeachOverArray(t *testing.T) {
	scopes := expectNoErrors(t, `
let xs: integer[] = [1, 2, 3];
foreach (x in xs) { let y = x + 1; }
`)
	sym := scopes.Root().Resolve("x")
	if sym == nil {
		t.Fatal("foreach variable should be defined in the enclosing scope")
	}
	if got := sym.SymbolType().String(); got != "integer" {
		t.Errorf("x : %s, want integer", got)
	}
	v, ok := sym.(*symbols.Variable)
	if !ok || !v.IsInitialized {
		t.Error("foreach variable should be an initialized variable")
	}
}

func TestForeachOverNonArray(t *testing.T) {
	expectError(t, `foreach (x in 42) { }`, diagnostics.ErrForeach)
}
