package parser

import (
	"testing"

	"github.com/compiscript/compiscript/internal/ast"
	"github.com/compiscript/compiscript/internal/lexer"
	"github.com/compiscript/compiscript/internal/pipeline"
)

func parseSource(t *testing.T, input string) (*ast.Program, *pipeline.PipelineContext) {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	stream := lexer.NewTokenStream(lexer.New(input))
	ctx.TokenStream = stream
	p := New(stream, ctx)
	return p.ParseProgram(), ctx
}

func parseClean(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, ctx := parseSource(t, input)
	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			t.Logf("parse error: %s", e.Error())
		}
		t.Fatalf("unexpected parse errors for input: %s", input)
	}
	return program
}

func TestParseVariableDeclaration(t *testing.T) {
	program := parseClean(t, `let x: integer = 5;`)
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements", len(program.Statements))
	}
	vd, ok := program.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement = %T", program.Statements[0])
	}
	if vd.Name.Value != "x" {
		t.Errorf("name = %s", vd.Name.Value)
	}
	if vd.TypeAnnotation.String() != "integer" {
		t.Errorf("annotation = %s", vd.TypeAnnotation)
	}
	lit, ok := vd.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 5 {
		t.Errorf("value = %v", vd.Value)
	}
}

func TestParseArrayTypeAnnotation(t *testing.T) {
	program := parseClean(t, `let m: integer[][];`)
	vd := program.Statements[0].(*ast.VariableDeclaration)
	if vd.TypeAnnotation.Name != "integer" || vd.TypeAnnotation.Dims != 2 {
		t.Errorf("annotation = %s (dims %d)", vd.TypeAnnotation.Name, vd.TypeAnnotation.Dims)
	}
}

func TestParseConstantRequiresInitializer(t *testing.T) {
	_, ctx := parseSource(t, `const k: integer;`)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a parse error for const without initializer")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	program := parseClean(t, `function suma(a: integer, b: integer): integer { return a + b; }`)
	fd, ok := program.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("statement = %T", program.Statements[0])
	}
	if fd.Name.Value != "suma" || len(fd.Params) != 2 {
		t.Fatalf("name=%s params=%d", fd.Name.Value, len(fd.Params))
	}
	if fd.Params[1].Name.Value != "b" || fd.Params[1].TypeAnnotation.Name != "integer" {
		t.Errorf("param[1] = %s: %s", fd.Params[1].Name.Value, fd.Params[1].TypeAnnotation)
	}
	if fd.ReturnType.Name != "integer" {
		t.Errorf("return type = %s", fd.ReturnType)
	}
	if len(fd.Body.Statements) != 1 {
		t.Fatalf("body has %d statements", len(fd.Body.Statements))
	}
	if _, ok := fd.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Errorf("body[0] = %T", fd.Body.Statements[0])
	}
}

func TestParseClassWithBaseAndMembers(t *testing.T) {
	program := parseClean(t, `
class Perro : Animal {
  let nombre: string;
  const patas: integer = 4;
  function ladra(): string { return "guau"; }
}`)
	cd, ok := program.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("statement = %T", program.Statements[0])
	}
	if cd.Name.Value != "Perro" || cd.Base.Value != "Animal" {
		t.Errorf("class %s : %v", cd.Name.Value, cd.Base)
	}
	if len(cd.Members) != 3 {
		t.Fatalf("members = %d", len(cd.Members))
	}
	if _, ok := cd.Members[0].(*ast.VariableDeclaration); !ok {
		t.Errorf("member[0] = %T", cd.Members[0])
	}
	if _, ok := cd.Members[1].(*ast.ConstantDeclaration); !ok {
		t.Errorf("member[1] = %T", cd.Members[1])
	}
	if _, ok := cd.Members[2].(*ast.FunctionDeclaration); !ok {
		t.Errorf("member[2] = %T", cd.Members[2])
	}
}

func TestParsePrecedence(t *testing.T) {
	program := parseClean(t, `let r = 1 + 2 * 3 == 7 && true;`)
	vd := program.Statements[0].(*ast.VariableDeclaration)
	and, ok := vd.Value.(*ast.InfixExpression)
	if !ok || and.Operator != "&&" {
		t.Fatalf("top = %v", vd.Value)
	}
	eq, ok := and.Left.(*ast.InfixExpression)
	if !ok || eq.Operator != "==" {
		t.Fatalf("and.Left = %v", and.Left)
	}
	sum, ok := eq.Left.(*ast.InfixExpression)
	if !ok || sum.Operator != "+" {
		t.Fatalf("eq.Left = %v", eq.Left)
	}
	mul, ok := sum.Right.(*ast.InfixExpression)
	if !ok || mul.Operator != "*" {
		t.Fatalf("sum.Right = %v", sum.Right)
	}
}

func TestParseSuffixChain(t *testing.T) {
	program := parseClean(t, `obj.campo[0].metodo(1, 2);`)
	es := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := es.Expression.(*ast.CallExpression)
	if !ok || len(call.Arguments) != 2 {
		t.Fatalf("expression = %T", es.Expression)
	}
	prop, ok := call.Callee.(*ast.PropertyExpression)
	if !ok || prop.Property.Value != "metodo" {
		t.Fatalf("callee = %T", call.Callee)
	}
	idx, ok := prop.Object.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("prop.Object = %T", prop.Object)
	}
	inner, ok := idx.Left.(*ast.PropertyExpression)
	if !ok || inner.Property.Value != "campo" {
		t.Fatalf("idx.Left = %T", idx.Left)
	}
	if obj, ok := inner.Object.(*ast.Identifier); !ok || obj.Value != "obj" {
		t.Fatalf("inner.Object = %T", inner.Object)
	}
}

func TestParseTernaryAndAssignment(t *testing.T) {
	program := parseClean(t, `x = e > 0 ? "pos" : "neg";`)
	es := program.Statements[0].(*ast.ExpressionStatement)
	assign, ok := es.Expression.(*ast.AssignExpression)
	if !ok {
		t.Fatalf("expression = %T", es.Expression)
	}
	if _, ok := assign.Value.(*ast.TernaryExpression); !ok {
		t.Fatalf("assign.Value = %T", assign.Value)
	}
}

func TestParseNewExpression(t *testing.T) {
	program := parseClean(t, `let p = new Punto(1, 2);`)
	vd := program.Statements[0].(*ast.VariableDeclaration)
	ne, ok := vd.Value.(*ast.NewExpression)
	if !ok || ne.ClassName.Value != "Punto" || len(ne.Arguments) != 2 {
		t.Fatalf("value = %v", vd.Value)
	}
}

func TestParseControlFlowForms(t *testing.T) {
	program := parseClean(t, `
if (a > 0) { b = 1; } else { b = 2; }
while (a > 0) { a = a - 1; }
do { a = a + 1; } while (a < 10);
for (let i: integer = 0; i < 3; i = i + 1) { c = i; }
foreach (x in lista) { c = x; }
switch (c) { case 1: break; default: c = 0; }
try { c = 1; } catch (err) { c = 2; }
return c;
`)
	wantTypes := []string{
		"*ast.IfStatement", "*ast.WhileStatement", "*ast.DoWhileStatement",
		"*ast.ForStatement", "*ast.ForeachStatement", "*ast.SwitchStatement",
		"*ast.TryCatchStatement", "*ast.ReturnStatement",
	}
	if len(program.Statements) != len(wantTypes) {
		t.Fatalf("got %d statements, want %d", len(program.Statements), len(wantTypes))
	}
	for i, stmt := range program.Statements {
		if got := typeName(stmt); got != wantTypes[i] {
			t.Errorf("statement[%d] = %s, want %s", i, got, wantTypes[i])
		}
	}

	sw := program.Statements[5].(*ast.SwitchStatement)
	if len(sw.Cases) != 1 || sw.Default == nil {
		t.Errorf("switch: %d cases, default %v", len(sw.Cases), sw.Default)
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *ast.IfStatement:
		return "*ast.IfStatement"
	case *ast.WhileStatement:
		return "*ast.WhileStatement"
	case *ast.DoWhileStatement:
		return "*ast.DoWhileStatement"
	case *ast.ForStatement:
		return "*ast.ForStatement"
	case *ast.ForeachStatement:
		return "*ast.ForeachStatement"
	case *ast.SwitchStatement:
		return "*ast.SwitchStatement"
	case *ast.TryCatchStatement:
		return "*ast.TryCatchStatement"
	case *ast.ReturnStatement:
		return "*ast.ReturnStatement"
	}
	return "?"
}

func TestParseErrorRecovery(t *testing.T) {
	program, ctx := parseSource(t, `
let = 5;
let y: integer = 2;
`)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a parse error for the malformed declaration")
	}
	var found bool
	for _, stmt := range program.Statements {
		if vd, ok := stmt.(*ast.VariableDeclaration); ok && vd.Name != nil && vd.Name.Value == "y" {
			found = true
		}
	}
	if !found {
		t.Fatal("parser should recover and still parse the next declaration")
	}
}

func TestParseArrayLiteralNested(t *testing.T) {
	program := parseClean(t, `let m = [[1, 2], [3]];`)
	vd := program.Statements[0].(*ast.VariableDeclaration)
	arr, ok := vd.Value.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("value = %v", vd.Value)
	}
	if inner, ok := arr.Elements[0].(*ast.ArrayLiteral); !ok || len(inner.Elements) != 2 {
		t.Fatalf("elements[0] = %v", arr.Elements[0])
	}
}
