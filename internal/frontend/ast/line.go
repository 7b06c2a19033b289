package ast

import (
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// Bit is a reference to a control bit, or a bitgroup call such as `moveTo(dst)`
type Bit struct {
	Name     Token
	Params   []Token
	Location *source.Location
}

func (b *Bit) INode()                {} // Implements Node interface
func (b *Bit) Loc() *source.Location { return b.Location }

// BitArray is the set of bits activated in one clock phase
type BitArray []Bit

// Line is one clock phase of an opcode. Conditional lines run High when the
// current condition flag is set and Low otherwise.
type Line struct {
	HasCondition bool
	Low          BitArray
	High         BitArray
	Location     *source.Location
}

func (l *Line) INode()                {} // Implements Node interface
func (l *Line) Loc() *source.Location { return l.Location }
