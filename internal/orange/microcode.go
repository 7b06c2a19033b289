package orange

import (
	"strings"

	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/source"
	"github.com/OrangeBacon/orange-sub000/internal/utils/numeric"
)

// FileName is the name diagnostics use for the reference microcode
const FileName = "orange.uasm"

// Source is the reference microcode. Microcode builds the tree a parser would
// produce for it, with matching line numbers.
const Source = `opsize: 4;
phase: 2;

header {
    IPToAddress, memReadToInst, iRegSet;
}

type Reg = enum(2) { A; B; C; D; }

bitgroup toData(Reg r) { $(r)ToData }
bitgroup fromData(Reg r) { DataTo$(r) }
bitgroup toAddress(Reg r) { $(r)ToAddress }

0b00 load(Reg dst) {
    IPToAddress, memReadToData, fromData(dst);
}
0b01 store(Reg src) {
    IPToAddress, toData(src), memWrite;
}
0b10 read(Reg addr) {
    toAddress(addr), memReadToData, DataToE;
    EToData, DataToAR;
}
0b1100 halt {
    halt;
}
0b1101 jmpc {
    ? AToAddress, AddressToIP : halt;
}
`

// cursor hands out token locations along one line of Source
type cursor struct {
	line   int
	column int
}

func (c *cursor) at(line int) *cursor {
	c.line = line
	c.column = 1
	return c
}

func (c *cursor) tok(value string) ast.Token {
	loc := source.Span(FileName, c.line, c.column, len(value))
	c.column += len(value) + 1
	return ast.Token{Value: value, Location: loc}
}

// num panics on malformed text, Source is a constant
func (c *cursor) num(text string) ast.Number {
	lit, err := numeric.ParseLiteral(text)
	if err != nil {
		panic(err)
	}
	t := c.tok(text)
	return ast.Number{Value: lit.Value, Width: lit.Width, Location: t.Location}
}

func (c *cursor) bits(names ...string) ast.BitArray {
	arr := make(ast.BitArray, 0, len(names))
	for _, name := range names {
		t := c.tok(name)
		arr = append(arr, ast.Bit{Name: t, Location: t.Location})
	}
	return arr
}

func (c *cursor) call(group, arg string) ast.Bit {
	name := c.tok(group)
	return ast.Bit{Name: name, Params: []ast.Token{c.tok(arg)}, Location: name.Location}
}

func (c *cursor) param(line int, name, value string) *ast.ParameterStmt {
	n := c.at(line).tok(name)
	return &ast.ParameterStmt{Name: n, Value: c.num(value), Location: n.Location}
}

// bitgroup builds a one parameter bitgroup. Segments written as "$(x)"
// substitute parameter x, anything else is literal text.
func (c *cursor) bitgroup(line int, name, typ, param string, segments ...string) *ast.BitGroupStmt {
	n := c.at(line).tok(name)
	group := &ast.BitGroupStmt{
		Name:     n,
		Params:   []ast.FunctionParameter{{Type: c.tok(typ), Name: c.tok(param)}},
		Location: n.Location,
	}
	for _, seg := range segments {
		if strings.HasPrefix(seg, "$(") && strings.HasSuffix(seg, ")") {
			group.Segments = append(group.Segments, ast.Segment{Kind: ast.SegmentSubst, Ident: c.tok(seg[2 : len(seg)-1])})
			continue
		}
		group.Segments = append(group.Segments, ast.Segment{Kind: ast.SegmentLiteral, Ident: c.tok(seg)})
	}
	return group
}

func (c *cursor) opcode(line int, id, name string, params ...string) *ast.OpcodeStmt {
	num := c.at(line).num(id)
	n := c.tok(name)
	op := &ast.OpcodeStmt{ID: num, Name: n, Location: n.Location}
	for i := 0; i+1 < len(params); i += 2 {
		op.Params = append(op.Params, ast.FunctionParameter{Type: c.tok(params[i]), Name: c.tok(params[i+1])})
	}
	return op
}

// Microcode returns the parsed form of Source
func Microcode() *ast.File {
	c := &cursor{}

	head := c.at(4).tok("header")
	header := &ast.HeaderStmt{
		Lines:      []ast.BitArray{c.at(5).bits("IPToAddress", "memReadToInst", "iRegSet")},
		ErrorPoint: head.Location,
		Location:   head.Location,
	}

	regName := c.at(8).tok("Reg")
	reg := &ast.EnumStmt{
		Name:     regName,
		Width:    c.num("2"),
		Members:  []ast.Token{c.tok("A"), c.tok("B"), c.tok("C"), c.tok("D")},
		Location: regName.Location,
	}

	load := c.opcode(14, "0b00", "load", "Reg", "dst")
	load.Lines = []ast.Line{{
		Low: append(c.at(15).bits("IPToAddress", "memReadToData"), c.call("fromData", "dst")),
	}}

	store := c.opcode(17, "0b01", "store", "Reg", "src")
	c.at(18)
	storeLine := c.bits("IPToAddress")
	storeLine = append(storeLine, c.call("toData", "src"))
	storeLine = append(storeLine, c.bits("memWrite")...)
	store.Lines = []ast.Line{{Low: storeLine}}

	read := c.opcode(20, "0b10", "read", "Reg", "addr")
	c.at(21)
	readLine := ast.BitArray{c.call("toAddress", "addr")}
	readLine = append(readLine, c.bits("memReadToData", "DataToE")...)
	read.Lines = []ast.Line{
		{Low: readLine},
		{Low: c.at(22).bits("EToData", "DataToAR")},
	}

	halt := c.opcode(24, "0b1100", "halt")
	halt.Lines = []ast.Line{{Low: c.at(25).bits("halt")}}

	jmpc := c.opcode(27, "0b1101", "jmpc")
	c.at(28)
	jmpc.Lines = []ast.Line{{
		HasCondition: true,
		High:         c.bits("AToAddress", "AddressToIP"),
		Low:          c.bits("halt"),
	}}

	return &ast.File{
		FileName: FileName,
		Statements: []ast.Statement{
			c.param(1, "opsize", "4"),
			c.param(2, "phase", "2"),
			header,
			reg,
			c.bitgroup(10, "toData", "Reg", "r", "$(r)", "ToData"),
			c.bitgroup(11, "fromData", "Reg", "r", "DataTo", "$(r)"),
			c.bitgroup(12, "toAddress", "Reg", "r", "$(r)", "ToAddress"),
			load,
			store,
			read,
			halt,
			jmpc,
		},
	}
}
