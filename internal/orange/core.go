// Package orange describes the Orange reference machine: its hardware
// catalogue and the microcode that drives it. It is used by the command line
// tool and by end to end tests.
package orange

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
)

// Connection selects which directions a bus/register link supports
type Connection int

const (
	BusToRegister Connection = iota
	RegisterToBus
	Bidirectional
)

// Builder adds the standard Orange components to a catalogue
type Builder struct {
	Catalogue *catalogue.Catalogue
}

// NewBuilder starts an empty machine
func NewBuilder() *Builder {
	return &Builder{Catalogue: catalogue.New()}
}

func (b *Builder) name(id catalogue.ComponentID) string {
	return b.Catalogue.Components[id].Name
}

// AddBusRegisterConnection adds <bus>To<reg> and/or <reg>To<bus>
func (b *Builder) AddBusRegisterConnection(bus, reg catalogue.ComponentID, conn Connection) {
	if conn == BusToRegister || conn == Bidirectional {
		b.Catalogue.AddCommand(catalogue.Command{
			Name:    fmt.Sprintf("%sTo%s", b.name(bus), b.name(reg)),
			Depends: []catalogue.ComponentID{bus},
			Changes: []catalogue.ComponentID{reg},
			Reads:   []catalogue.ComponentID{bus},
		})
	}

	if conn == RegisterToBus || conn == Bidirectional {
		b.Catalogue.AddCommand(catalogue.Command{
			Name:    fmt.Sprintf("%sTo%s", b.name(reg), b.name(bus)),
			Depends: []catalogue.ComponentID{reg},
			Changes: []catalogue.ComponentID{bus},
			Writes:  []catalogue.ComponentID{bus},
		})
	}
}

// AddInstructionRegister adds IReg, loaded from instBus by iRegSet
func (b *Builder) AddInstructionRegister(instBus catalogue.ComponentID) catalogue.ComponentID {
	ireg := b.Catalogue.AddComponent("IReg", catalogue.Other)
	b.Catalogue.AddCommand(catalogue.Command{
		Name:    "iRegSet",
		Depends: []catalogue.ComponentID{instBus},
		Changes: []catalogue.ComponentID{ireg},
		Reads:   []catalogue.ComponentID{instBus},
	})
	return ireg
}

// Memory is a memory component and the bus it is addressed by
type Memory struct {
	ID      catalogue.ComponentID
	Address catalogue.ComponentID
}

// AddMemory64k adds 64k words of memory with memReadTo<data> and memWrite
func (b *Builder) AddMemory64k(address, data catalogue.ComponentID) Memory {
	mem := Memory{
		ID:      b.Catalogue.AddComponent("Memory64", catalogue.Other),
		Address: address,
	}

	b.AddMemoryBusOutput(mem, data)
	b.Catalogue.AddCommand(catalogue.Command{
		Name:    "memWrite",
		Depends: []catalogue.ComponentID{address, data},
		Changes: []catalogue.ComponentID{mem.ID},
		Reads:   []catalogue.ComponentID{address, data},
	})

	return mem
}

// AddMemoryBusOutput lets memory drive another bus with memReadTo<bus>
func (b *Builder) AddMemoryBusOutput(mem Memory, bus catalogue.ComponentID) {
	b.Catalogue.AddCommand(catalogue.Command{
		Name:    fmt.Sprintf("memReadTo%s", b.name(bus)),
		Depends: []catalogue.ComponentID{mem.Address, mem.ID},
		Changes: []catalogue.ComponentID{bus},
		Reads:   []catalogue.ComponentID{mem.Address},
		Writes:  []catalogue.ComponentID{bus},
	})
}

// AddHaltInstruction adds halt, which touches no component
func (b *Builder) AddHaltInstruction() {
	b.Catalogue.AddCommand(catalogue.Command{Name: "halt"})
}

// Registers of the reference machine, in declaration order
var Registers = []string{"A", "B", "C", "D", "E", "AR", "IP", "SP"}

// Catalogue builds the reference machine: eight registers linked both ways
// to the Address and Data buses, an instruction register fed from the Inst
// bus and 64k of memory.
func Catalogue() *catalogue.Catalogue {
	b := NewBuilder()

	regs := make([]catalogue.ComponentID, len(Registers))
	for i, name := range Registers {
		regs[i] = b.Catalogue.AddRegister(name)
	}

	address := b.Catalogue.AddBus("Address")
	data := b.Catalogue.AddBus("Data")
	inst := b.Catalogue.AddBus("Inst")

	for _, reg := range regs {
		b.AddBusRegisterConnection(data, reg, Bidirectional)
	}
	for _, reg := range regs {
		b.AddBusRegisterConnection(address, reg, Bidirectional)
	}

	b.AddInstructionRegister(inst)
	mem := b.AddMemory64k(address, data)
	b.AddMemoryBusOutput(mem, inst)

	b.AddHaltInstruction()

	return b.Catalogue
}
