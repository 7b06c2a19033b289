// Package catalogue describes the hardware a microcode description targets:
// the components of the machine and the control-bit commands that move values
// between them. A catalogue is built once before analysis and is read-only
// afterwards.
package catalogue

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCommand reports two commands sharing a name. It indicates a
	// bug in whatever built the catalogue, not a problem in user microcode.
	ErrDuplicateCommand = errors.New("duplicate command name in catalogue")

	// ErrUnknownComponent reports a command referring to a component id that
	// does not exist.
	ErrUnknownComponent = errors.New("command refers to unknown component")
)

// ComponentID indexes Catalogue.Components
type ComponentID = uint

// CommandID indexes Catalogue.Commands
type CommandID = uint

// ComponentType categorises a component
type ComponentType int

const (
	Bus ComponentType = iota
	Register
	Other
)

func (t ComponentType) String() string {
	switch t {
	case Bus:
		return "bus"
	case Register:
		return "register"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Component is a hardware element whose value commands read or change
type Component struct {
	ID        ComponentID
	Name      string
	PrintName string
	Type      ComponentType
}

// Command is a single control bit
type Command struct {
	ID   CommandID
	Name string

	// components whose value this command needs
	Depends []ComponentID
	// components whose value this command changes
	Changes []ComponentID
	// buses sampled by the command
	Reads []ComponentID
	// buses driven by the command
	Writes []ComponentID
}

// Catalogue is the full set of components and commands of a machine
type Catalogue struct {
	Components []Component
	Commands   []Command
}

// New creates an empty catalogue
func New() *Catalogue {
	return &Catalogue{
		Components: make([]Component, 0),
		Commands:   make([]Command, 0),
	}
}

// AddComponent appends a component and returns its id
func (c *Catalogue) AddComponent(name string, typ ComponentType) ComponentID {
	id := ComponentID(len(c.Components))
	c.Components = append(c.Components, Component{
		ID:        id,
		Name:      name,
		PrintName: name,
		Type:      typ,
	})
	return id
}

// AddBus appends a bus component
func (c *Catalogue) AddBus(name string) ComponentID {
	return c.AddComponent(name, Bus)
}

// AddRegister appends a register component
func (c *Catalogue) AddRegister(name string) ComponentID {
	return c.AddComponent(name, Register)
}

// AddCommand appends a command and returns its id. The command's ID field is
// overwritten.
func (c *Catalogue) AddCommand(cmd Command) CommandID {
	cmd.ID = CommandID(len(c.Commands))
	c.Commands = append(c.Commands, cmd)
	return cmd.ID
}

// CommandCount is the number of commands, used to offset component ids when
// commands and components share one id space
func (c *Catalogue) CommandCount() uint {
	return uint(len(c.Commands))
}

// Validate checks the catalogue is internally consistent
func (c *Catalogue) Validate() error {
	names := make(map[string]CommandID, len(c.Commands))
	for i, cmd := range c.Commands {
		if first, ok := names[cmd.Name]; ok {
			return fmt.Errorf("%w: %q (commands %d and %d)", ErrDuplicateCommand, cmd.Name, first, i)
		}
		names[cmd.Name] = CommandID(i)

		for _, set := range [][]ComponentID{cmd.Depends, cmd.Changes, cmd.Reads, cmd.Writes} {
			for _, comp := range set {
				if int(comp) >= len(c.Components) {
					return fmt.Errorf("%w: %q uses component %d", ErrUnknownComponent, cmd.Name, comp)
				}
			}
		}
	}
	return nil
}
