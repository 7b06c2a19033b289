package ast

import (
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// ParameterStmt sets a named numeric parameter, e.g. `phase: 4;`
type ParameterStmt struct {
	Name     Token
	Value    Number
	Location *source.Location
}

func (p *ParameterStmt) INode()                {} // Implements Node interface
func (p *ParameterStmt) Stmt()                 {} // Implements Statement interface
func (p *ParameterStmt) Loc() *source.Location { return p.Location }

// HeaderStmt lists the control bits executed at the start of every instruction
type HeaderStmt struct {
	Lines      []BitArray
	ErrorPoint *source.Location // the `header` keyword
	Location   *source.Location
}

func (h *HeaderStmt) INode()                {} // Implements Node interface
func (h *HeaderStmt) Stmt()                 {} // Implements Statement interface
func (h *HeaderStmt) Loc() *source.Location { return h.Location }

// FunctionParameter is a `Type name` pair in an opcode or bitgroup header
type FunctionParameter struct {
	Type Token
	Name Token
}

// OpcodeStmt declares an instruction, e.g.
//
//	0b01 mov(Reg dst) { ... }
type OpcodeStmt struct {
	ID       Number
	Name     Token
	Params   []FunctionParameter
	Lines    []Line
	Location *source.Location
}

func (o *OpcodeStmt) INode()                {} // Implements Node interface
func (o *OpcodeStmt) Stmt()                 {} // Implements Statement interface
func (o *OpcodeStmt) Loc() *source.Location { return o.Location }

// EnumStmt declares an enum user type, e.g. `type Reg = enum(1) { A; B; }`
type EnumStmt struct {
	Name     Token
	Width    Number
	Members  []Token
	Location *source.Location
}

func (e *EnumStmt) INode()                {} // Implements Node interface
func (e *EnumStmt) Stmt()                 {} // Implements Statement interface
func (e *EnumStmt) Loc() *source.Location { return e.Location }

// SegmentKind distinguishes literal text from substitutions in a bitgroup
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentSubst
)

// Segment is one piece of a bitgroup's name template
type Segment struct {
	Kind  SegmentKind
	Ident Token
}

// BitGroupStmt declares a template expanding to one control bit per
// combination of its enum parameters, e.g. `bitgroup moveTo(Reg r) { $(r)ToBus }`
type BitGroupStmt struct {
	Name     Token
	Params   []FunctionParameter
	Segments []Segment
	Location *source.Location
}

func (b *BitGroupStmt) INode()                {} // Implements Node interface
func (b *BitGroupStmt) Stmt()                 {} // Implements Statement interface
func (b *BitGroupStmt) Loc() *source.Location { return b.Location }
