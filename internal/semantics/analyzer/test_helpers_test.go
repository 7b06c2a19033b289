package analyzer

import (
	"testing"

	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/source"
	"github.com/davecgh/go-spew/spew"
)

const testFile = "test.uasm"

// every token gets its own line so locations are distinct
var nextLine = 1

func tok(value string) ast.Token {
	loc := source.Span(testFile, nextLine, 1, len(value))
	nextLine++
	return ast.Token{Value: value, Location: loc}
}

func num(value, width uint) ast.Number {
	t := tok("0")
	return ast.Number{Value: value, Width: width, Location: t.Location}
}

func param(name string, value uint) *ast.ParameterStmt {
	n := tok(name)
	return &ast.ParameterStmt{Name: n, Value: num(value, 1), Location: n.Location}
}

func bit(name string) ast.Bit {
	n := tok(name)
	return ast.Bit{Name: n, Location: n.Location}
}

func call(group string, args ...string) ast.Bit {
	b := bit(group)
	for _, arg := range args {
		b.Params = append(b.Params, tok(arg))
	}
	return b
}

func bits(names ...string) ast.BitArray {
	arr := make(ast.BitArray, 0, len(names))
	for _, name := range names {
		arr = append(arr, bit(name))
	}
	return arr
}

func line(b ...ast.Bit) ast.Line {
	return ast.Line{Low: b}
}

func condLine(low, high ast.BitArray) ast.Line {
	return ast.Line{HasCondition: true, Low: low, High: high}
}

func header(lines ...ast.BitArray) *ast.HeaderStmt {
	point := tok("header")
	return &ast.HeaderStmt{Lines: lines, ErrorPoint: point.Location, Location: point.Location}
}

func fp(typ, name string) ast.FunctionParameter {
	return ast.FunctionParameter{Type: tok(typ), Name: tok(name)}
}

func params(p ...ast.FunctionParameter) []ast.FunctionParameter {
	return p
}

func opcode(id, width uint, name string, p []ast.FunctionParameter, lines ...ast.Line) *ast.OpcodeStmt {
	n := tok(name)
	return &ast.OpcodeStmt{ID: num(id, width), Name: n, Params: p, Lines: lines, Location: n.Location}
}

func enum(name string, width uint, members ...string) *ast.EnumStmt {
	n := tok(name)
	e := &ast.EnumStmt{Name: n, Width: num(width, 1), Location: n.Location}
	for _, m := range members {
		e.Members = append(e.Members, tok(m))
	}
	return e
}

func lit(text string) ast.Segment {
	return ast.Segment{Kind: ast.SegmentLiteral, Ident: tok(text)}
}

func subst(name string) ast.Segment {
	return ast.Segment{Kind: ast.SegmentSubst, Ident: tok(name)}
}

func bitgroup(name string, p []ast.FunctionParameter, segs ...ast.Segment) *ast.BitGroupStmt {
	n := tok(name)
	return &ast.BitGroupStmt{Name: n, Params: p, Segments: segs, Location: n.Location}
}

// testCatalogue is a three register machine with a single bus:
//
//	AToBus, BToBus, CToBus drive the bus from a register
//	busToA, busToB, busToC load a register from the bus
//	fetch and halt touch nothing
func testCatalogue() *catalogue.Catalogue {
	cat := catalogue.New()
	bus := cat.AddBus("bus")
	for _, reg := range []string{"A", "B", "C"} {
		r := cat.AddRegister(reg)
		cat.AddCommand(catalogue.Command{
			Name:    reg + "ToBus",
			Depends: []catalogue.ComponentID{r},
			Changes: []catalogue.ComponentID{bus},
			Writes:  []catalogue.ComponentID{bus},
		})
		cat.AddCommand(catalogue.Command{
			Name:    "busTo" + reg,
			Depends: []catalogue.ComponentID{bus},
			Changes: []catalogue.ComponentID{r},
			Reads:   []catalogue.ComponentID{bus},
		})
	}
	cat.AddCommand(catalogue.Command{Name: "fetch"})
	cat.AddCommand(catalogue.Command{Name: "halt"})
	return cat
}

func commandID(t *testing.T, ctx *Context, name string) catalogue.CommandID {
	t.Helper()
	for i, cmd := range ctx.Catalogue.Commands {
		if cmd.Name == name {
			return catalogue.CommandID(i)
		}
	}
	t.Fatalf("no command %q", name)
	return 0
}

func commandIDs(t *testing.T, ctx *Context, names ...string) []catalogue.CommandID {
	t.Helper()
	ids := make([]catalogue.CommandID, len(names))
	for i, name := range names {
		ids[i] = commandID(t, ctx, name)
	}
	return ids
}

func analyse(t *testing.T, stmts ...ast.Statement) *Context {
	t.Helper()
	ctx, err := New(testFile, testCatalogue())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	Analyse(ctx, &ast.File{FileName: testFile, Statements: stmts})
	return ctx
}

// prelude declares phase 2, opsize 2, a one line header and a one bit enum Reg
func prelude() []ast.Statement {
	return []ast.Statement{
		param("phase", 2),
		param("opsize", 2),
		header(bits("fetch")),
		enum("Reg", 1, "A", "B"),
	}
}

func withPrelude(stmts ...ast.Statement) []ast.Statement {
	return append(prelude(), stmts...)
}

func codes(ctx *Context) []string {
	result := make([]string, 0)
	for _, diag := range ctx.Diagnostics.Diagnostics() {
		result = append(result, diag.Code)
	}
	return result
}

func expectCodes(t *testing.T, ctx *Context, want ...string) {
	t.Helper()
	got := codes(ctx)
	if len(got) != len(want) {
		t.Fatalf("Expected codes %v, got %v\n%s", want, got, spew.Sdump(ctx.Diagnostics.Diagnostics()))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected codes %v, got %v\n%s", want, got, spew.Sdump(ctx.Diagnostics.Diagnostics()))
		}
	}
}

func equalIDs(a, b []catalogue.CommandID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
