// Package program holds the result of analysis handed to code generation:
// the ordered header bits and a dense table of concrete opcodes.
package program

import (
	"fmt"
	"io"
	"strings"

	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/source"
	"github.com/davecgh/go-spew/spew"
)

// Line is one clock phase of a concrete opcode
type Line struct {
	HasCondition bool
	// false when the line could not be ordered or misuses a bus
	Valid bool
	Low   []catalogue.CommandID
	// equal to Low when the line has no condition
	High []catalogue.CommandID
}

// Opcode is one concrete instruction
type Opcode struct {
	// false when any line failed, such opcodes are not generated
	Valid bool
	// set for every id an opcode statement expands to, valid or not
	Declared bool
	ID       uint
	Name     string
	// parameter bindings of this variant, e.g. "dst=A"
	Arguments []string
	Lines     []Line
	Location  *source.Location
}

// Signature is the opcode name followed by its bindings, e.g. "mov(dst=A)"
func (o *Opcode) Signature() string {
	if len(o.Arguments) == 0 {
		return o.Name
	}
	return o.Name + "(" + strings.Join(o.Arguments, ", ") + ")"
}

// Program is the output of analysing one microcode description
type Program struct {
	// width of the opcode field, zero until allocated
	Opsize uint
	// indexed by opcode id, nil until an opcode is analysed
	Opcodes []Opcode

	HeadBits    []catalogue.CommandID
	HeaderValid bool
}

// New creates an empty program
func New() *Program {
	return &Program{
		HeadBits: make([]catalogue.CommandID, 0),
	}
}

// NewTable allocates the dense opcode table of 1<<opsize invalid slots. It
// does nothing once a table exists.
func (p *Program) NewTable(opsize uint) {
	if p.Opcodes != nil {
		return
	}
	p.Opsize = opsize
	p.Opcodes = make([]Opcode, 1<<opsize)
	for i := range p.Opcodes {
		p.Opcodes[i].ID = uint(i)
	}
}

// Allocated reports whether NewTable has run
func (p *Program) Allocated() bool {
	return p.Opcodes != nil
}

// Opcode returns the slot for a concrete id
func (p *Program) Opcode(id uint) (*Opcode, bool) {
	if id >= uint(len(p.Opcodes)) {
		return nil, false
	}
	return &p.Opcodes[id], true
}

// ValidOpcodes returns the populated slots in id order
func (p *Program) ValidOpcodes() []*Opcode {
	result := make([]*Opcode, 0)
	for i := range p.Opcodes {
		if p.Opcodes[i].Valid {
			result = append(result, &p.Opcodes[i])
		}
	}
	return result
}

// Dump writes a readable listing of the program using command names from cat
func Dump(w io.Writer, p *Program, cat *catalogue.Catalogue) {
	names := func(ids []catalogue.CommandID) string {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = cat.Commands[id].Name
		}
		return strings.Join(parts, ", ")
	}

	fmt.Fprintf(w, "header: %s\n", names(p.HeadBits))
	if !p.Allocated() {
		fmt.Fprintln(w, "no opcodes")
		return
	}

	digits := max(int(p.Opsize), 1)
	for _, op := range p.ValidOpcodes() {
		fmt.Fprintf(w, "0b%0*b %s\n", digits, op.ID, op.Signature())
		for i, line := range op.Lines {
			switch {
			case !line.Valid:
				fmt.Fprintf(w, "  %d: <invalid>\n", i)
			case line.HasCondition:
				fmt.Fprintf(w, "  %d: low  %s\n", i, names(line.Low))
				fmt.Fprintf(w, "  %d: high %s\n", i, names(line.High))
			default:
				fmt.Fprintf(w, "  %d: %s\n", i, names(line.Low))
			}
		}
	}
}

// DebugDump writes the full program structure
func DebugDump(w io.Writer, p *Program) {
	config := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	config.Fdump(w, p)
}
