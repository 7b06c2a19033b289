// Package ast holds the microcode description syntax tree handed to semantic
// analysis by the parser.
package ast

import (
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Statement represents any top level block of a microcode description
type Statement interface {
	Node
	Stmt()
}

// Token is a word of source text
type Token struct {
	Value    string
	Location *source.Location
}

func (t *Token) INode()                {} // Implements Node interface
func (t *Token) Loc() *source.Location { return t.Location }

// Number is an integer literal. Width is the number of digits written, which
// for binary opcode ids is the number of bits they occupy.
type Number struct {
	Value    uint
	Width    uint
	Location *source.Location
}

func (n *Number) INode()                {} // Implements Node interface
func (n *Number) Loc() *source.Location { return n.Location }

// File is a parsed microcode description
type File struct {
	FileName   string
	Statements []Statement
}
