package symbols

import (
	"github.com/compiscript/compiscript/internal/typesystem"
)

type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	ParameterSymbol
	FunctionSymbol
	ClassSymbol
)

// Symbol is the interface over the tagged symbol variants.
type Symbol interface {
	SymbolName() string
	SymbolType() typesystem.Type
	Kind() SymbolKind
	Category() string
	Position() (line, col int)
}

// Variable is a declared variable or constant.
type Variable struct {
	Name          string
	Type          typesystem.Type
	IsConst       bool
	IsInitialized bool
	Line          int
	Col           int
}

func (v *Variable) SymbolName() string             { return v.Name }
func (v *Variable) SymbolType() typesystem.Type    { return v.Type }
func (v *Variable) Kind() SymbolKind               { return VariableSymbol }
func (v *Variable) Position() (line, col int)      { return v.Line, v.Col }
func (v *Variable) Category() string {
	if v.IsConst {
		return "const"
	}
	return "variable"
}

// Parameter is a function parameter with its zero-based position.
type Parameter struct {
	Name  string
	Type  typesystem.Type
	Index int
	Line  int
	Col   int
}

func (p *Parameter) SymbolName() string          { return p.Name }
func (p *Parameter) SymbolType() typesystem.Type { return p.Type }
func (p *Parameter) Kind() SymbolKind            { return ParameterSymbol }
func (p *Parameter) Category() string            { return "param" }
func (p *Parameter) Position() (line, col int)   { return p.Line, p.Col }

// Function is a declared function or method.
// ClosureScope is the scope the function was declared in; it is a
// back-reference used during call checking, never an ownership edge.
type Function struct {
	Name         string
	Type         typesystem.TFunc
	Params       []*Parameter
	ClosureScope *Scope
	Nested       map[string]*Function
	NestedOrder  []string
	Line         int
	Col          int
}

func (f *Function) SymbolName() string          { return f.Name }
func (f *Function) SymbolType() typesystem.Type { return f.Type }
func (f *Function) Kind() SymbolKind            { return FunctionSymbol }
func (f *Function) Category() string            { return "function" }
func (f *Function) Position() (line, col int)   { return f.Line, f.Col }

// AddNested records an inner function declared inside this function's body.
func (f *Function) AddNested(inner *Function) {
	if f.Nested == nil {
		f.Nested = make(map[string]*Function)
	}
	if _, exists := f.Nested[inner.Name]; !exists {
		f.NestedOrder = append(f.NestedOrder, inner.Name)
	}
	f.Nested[inner.Name] = inner
}

// Class is a declared class: its fields and methods in declaration order,
// and the name of its base class when it extends one.
type Class struct {
	Name        string
	Type        typesystem.TCon
	Fields      map[string]*Variable
	FieldOrder  []string
	Methods     map[string]*Function
	MethodOrder []string
	Base        string
	Line        int
	Col         int
}

func NewClass(name string, line, col int) *Class {
	return &Class{
		Name:    name,
		Type:    typesystem.TCon{Name: name},
		Fields:  make(map[string]*Variable),
		Methods: make(map[string]*Function),
		Line:    line,
		Col:     col,
	}
}

func (c *Class) SymbolName() string          { return c.Name }
func (c *Class) SymbolType() typesystem.Type { return c.Type }
func (c *Class) Kind() SymbolKind            { return ClassSymbol }
func (c *Class) Category() string            { return "class" }
func (c *Class) Position() (line, col int)   { return c.Line, c.Col }

// AddField records a field, keeping declaration order.
func (c *Class) AddField(v *Variable) {
	if _, exists := c.Fields[v.Name]; !exists {
		c.FieldOrder = append(c.FieldOrder, v.Name)
	}
	c.Fields[v.Name] = v
}

// AddMethod records a method, keeping declaration order.
func (c *Class) AddMethod(f *Function) {
	if _, exists := c.Methods[f.Name]; !exists {
		c.MethodOrder = append(c.MethodOrder, f.Name)
	}
	c.Methods[f.Name] = f
}
