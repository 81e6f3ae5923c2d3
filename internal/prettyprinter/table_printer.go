package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/compiscript/compiscript/internal/symbols"
)

// TablePrinter renders the scope tree produced by the analyzer in a
// human-readable layout: one line per symbol, functions with their
// parameters and nested functions, classes with their fields and methods.
type TablePrinter struct {
	buf    bytes.Buffer
	indent int
}

// PrintSymbolTable renders the whole tree starting at the root scope.
func PrintSymbolTable(root *symbols.Scope) string {
	p := &TablePrinter{}
	p.writeLine("Tabla de Símbolos")
	p.writeLine("====================")
	if root == nil {
		p.writeLine("No hay scopes registrados en la tabla de símbolos.")
		return p.buf.String()
	}
	p.printScope(root)
	return p.buf.String()
}

func (p *TablePrinter) printScope(scope *symbols.Scope) {
	header := fmt.Sprintf("Scope (%s)", scope.Kind)
	if scope.Name != "" {
		header = fmt.Sprintf("Scope (%s %s)", scope.Kind, scope.Name)
	}
	p.writeLine(header)

	for _, sym := range scope.Symbols() {
		line, col := sym.Position()
		p.writeLine(fmt.Sprintf("- %-8s %-12s : %s (line %d, col %d)",
			sym.Category(), sym.SymbolName(), sym.SymbolType(), line, col))

		switch s := sym.(type) {
		case *symbols.Function:
			p.printFunctionDetail(s, 1)
		case *symbols.Class:
			p.printClassDetail(s)
		}
	}

	for _, child := range scope.Children {
		p.indent++
		p.printScope(child)
		p.indent--
	}
}

func (p *TablePrinter) printFunctionDetail(fn *symbols.Function, depth int) {
	pad := indentOf(depth * 2)
	for _, param := range fn.Params {
		p.writeLine(fmt.Sprintf("%sparam %s : %s (index %d)", pad, param.Name, param.Type, param.Index))
	}
	for _, name := range fn.NestedOrder {
		nested := fn.Nested[name]
		p.writeLine(fmt.Sprintf("%snested function %s : %s", pad, name, nested.Type))
		p.printFunctionDetail(nested, depth+1)
	}
}

func (p *TablePrinter) printClassDetail(cls *symbols.Class) {
	for _, name := range cls.FieldOrder {
		p.writeLine(fmt.Sprintf("    field %s : %s", name, cls.Fields[name].Type))
	}
	for _, name := range cls.MethodOrder {
		p.writeLine(fmt.Sprintf("    method %s : %s", name, cls.Methods[name].Type))
	}
}

func (p *TablePrinter) writeLine(s string) {
	p.buf.WriteString(indentOf(p.indent * 2))
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func indentOf(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
