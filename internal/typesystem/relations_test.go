package typesystem

import "testing"

func TestEqualStructural(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same primitive", Integer, TCon{Name: "integer"}, true},
		{"different primitive", Integer, String, false},
		{"same class", TCon{Name: "A"}, TCon{Name: "A"}, true},
		{"different class", TCon{Name: "A"}, TCon{Name: "B"}, false},
		{"arrays same dims", MakeArray(Integer, 1), MakeArray(Integer, 1), true},
		{"arrays different dims", MakeArray(Integer, 1), MakeArray(Integer, 2), false},
		{"arrays different elem", MakeArray(Integer, 1), MakeArray(String, 1), false},
		{"functions equal", MakeFunc([]Type{Integer, String}, Boolean), MakeFunc([]Type{Integer, String}, Boolean), true},
		{"functions ret differs", MakeFunc(nil, Integer), MakeFunc(nil, Void), false},
		{"functions arity differs", MakeFunc([]Type{Integer}, Void), MakeFunc(nil, Void), false},
		{"array vs primitive", MakeArray(Integer, 1), Integer, false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal(%s, %s) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCanAssignReflexiveOnEqual(t *testing.T) {
	for _, typ := range []Type{Integer, String, Boolean, MakeArray(Integer, 2), TCon{Name: "Perro"}, MakeFunc([]Type{Integer}, Void)} {
		if !CanAssign(typ, typ) {
			t.Errorf("CanAssign(%s, %s) should hold", typ, typ)
		}
	}
}

func TestCanAssignNullIntoReferences(t *testing.T) {
	tests := []struct {
		dst  Type
		want bool
	}{
		{MakeArray(Integer, 1), true},
		{TCon{Name: "Perro"}, true},
		{String, true},
		{Integer, false},
		{Boolean, false},
		{Void, false},
	}
	for _, tt := range tests {
		if got := CanAssign(tt.dst, Null); got != tt.want {
			t.Errorf("CanAssign(%s, null) = %v, want %v", tt.dst, got, tt.want)
		}
	}
}

func TestArithmeticType(t *testing.T) {
	tests := []struct {
		op       string
		lhs, rhs Type
		want     Type
	}{
		{"+", Integer, Integer, Integer},
		{"-", Integer, Integer, Integer},
		{"*", Integer, Integer, Integer},
		{"/", Integer, Integer, Integer},
		{"%", Integer, Integer, Integer},
		{"+", String, String, String},
		{"+", String, Integer, String},
		{"+", Integer, String, String},
		{"-", String, String, nil},
		{"-", String, Integer, nil},
		{"+", Boolean, Integer, nil},
		{"*", String, String, nil},
	}
	for _, tt := range tests {
		got := ArithmeticType(tt.op, tt.lhs, tt.rhs)
		if tt.want == nil {
			if got != nil {
				t.Errorf("ArithmeticType(%q, %s, %s) = %v, want nil", tt.op, tt.lhs, tt.rhs, got)
			}
			continue
		}
		if got == nil || !Equal(got, tt.want) {
			t.Errorf("ArithmeticType(%q, %s, %s) = %v, want %s", tt.op, tt.lhs, tt.rhs, got, tt.want)
		}
	}
}

func TestStringConcatIsCommutativeInResult(t *testing.T) {
	a := ArithmeticType("+", String, Integer)
	b := ArithmeticType("+", Integer, String)
	if a == nil || b == nil || !Equal(a, b) {
		t.Fatalf("string+integer and integer+string should both be string, got %v and %v", a, b)
	}
}

func TestLogicalAndComparison(t *testing.T) {
	if LogicalType(Boolean, Boolean) == nil {
		t.Error("boolean && boolean should be defined")
	}
	if LogicalType(Integer, Boolean) != nil {
		t.Error("integer && boolean should be undefined")
	}
	if EqualityType(Integer, Integer) == nil {
		t.Error("integer == integer should be defined")
	}
	if EqualityType(Integer, String) != nil {
		t.Error("integer == string should be undefined")
	}
	if EqualityType(MakeArray(Integer, 1), MakeArray(Integer, 1)) == nil {
		t.Error("integer[] == integer[] should be defined")
	}
	if OrderingType(Integer, Integer) == nil {
		t.Error("integer < integer should be defined")
	}
	if OrderingType(String, String) != nil {
		t.Error("string < string should be undefined")
	}
}

func TestMakeArrayFlattens(t *testing.T) {
	inner := MakeArray(Integer, 1)
	outer := MakeArray(inner, 1)
	arr, ok := outer.(TArray)
	if !ok {
		t.Fatalf("expected TArray, got %T", outer)
	}
	if arr.Dims != 2 {
		t.Errorf("expected dims 2, got %d", arr.Dims)
	}
	if _, nested := arr.Elem.(TArray); nested {
		t.Error("array element must never be an array head")
	}
	if outer.String() != "integer[][]" {
		t.Errorf("expected integer[][], got %s", outer)
	}
}
