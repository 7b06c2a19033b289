package catalogue

import (
	"errors"
	"testing"
)

func TestBuilderAssignsSequentialIDs(t *testing.T) {
	c := New()
	bus := c.AddBus("dataBus")
	reg := c.AddRegister("A")
	other := c.AddComponent("Memory64", Other)

	if bus != 0 || reg != 1 || other != 2 {
		t.Errorf("Unexpected component ids %d %d %d", bus, reg, other)
	}
	if c.Components[reg].Type != Register || c.Components[reg].PrintName != "A" {
		t.Errorf("Unexpected component %+v", c.Components[reg])
	}

	first := c.AddCommand(Command{ID: 99, Name: "AToDataBus", Depends: []ComponentID{reg}, Changes: []ComponentID{bus}})
	second := c.AddCommand(Command{Name: "dataBusToA"})
	if first != 0 || second != 1 || c.Commands[0].ID != 0 {
		t.Errorf("Unexpected command ids %d %d", first, second)
	}
	if c.CommandCount() != 2 {
		t.Errorf("Expected 2 commands, got %d", c.CommandCount())
	}
}

func TestComponentTypeString(t *testing.T) {
	tests := map[ComponentType]string{
		Bus:               "bus",
		Register:          "register",
		Other:             "other",
		ComponentType(17): "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("ComponentType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	c := New()
	bus := c.AddBus("bus")
	c.AddCommand(Command{Name: "a", Writes: []ComponentID{bus}})
	c.AddCommand(Command{Name: "b", Reads: []ComponentID{bus}})

	if err := c.Validate(); err != nil {
		t.Fatalf("Expected valid catalogue, got %v", err)
	}

	c.AddCommand(Command{Name: "a"})
	if err := c.Validate(); !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("Expected ErrDuplicateCommand, got %v", err)
	}
}

func TestValidateUnknownComponent(t *testing.T) {
	c := New()
	c.AddCommand(Command{Name: "broken", Changes: []ComponentID{4}})

	if err := c.Validate(); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Expected ErrUnknownComponent, got %v", err)
	}
}
