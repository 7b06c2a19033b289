package symbols

import (
	"testing"

	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		ident Identifier
		want  string
	}{
		{&Parameter{Value: 4}, "parameter"},
		{&ControlBit{Command: 2}, "vm control bit"},
		{NewEnum("Reg", nil, 1), "user type"},
		{&BitGroup{}, "bitgroup"},
	}

	for _, tt := range tests {
		if got := tt.ident.Kind().String(); got != tt.want {
			t.Errorf("Kind().String() = %q, want %q", got, tt.want)
		}
	}

	if Kind(12).String() != "unknown" {
		t.Error("Expected unknown for out of range kind")
	}
}

func TestEnumMembers(t *testing.T) {
	e := NewEnum("Reg", nil, 2)
	for _, name := range []string{"A", "B", "C"} {
		if _, ok := e.AddMember(ast.Token{Value: name}); !ok {
			t.Fatalf("AddMember(%s) reported duplicate", name)
		}
	}

	original, ok := e.AddMember(ast.Token{Value: "B"})
	if ok {
		t.Error("Expected duplicate member to be rejected")
	}
	if original.Value != "B" {
		t.Errorf("Expected original token to be returned, got %q", original.Value)
	}

	if e.MemberCount() != 3 {
		t.Errorf("Expected 3 members, got %d", e.MemberCount())
	}
	if i, ok := e.MemberIndex("C"); !ok || i != 2 {
		t.Errorf("MemberIndex(C) = %d, %v", i, ok)
	}
	if e.MemberName(1) != "B" {
		t.Errorf("MemberName(1) = %q", e.MemberName(1))
	}
	if e.UserType().String() != "enum" {
		t.Errorf("Expected enum user type, got %s", e.UserType())
	}
}

func TestBitGroupLineLength(t *testing.T) {
	bg := &BitGroup{Substituted: []string{"AToBus", "LongerToBus", "B"}}
	if bg.LineLength() != len("LongerToBus") {
		t.Errorf("LineLength() = %d", bg.LineLength())
	}
}
