package program

import (
	"strings"
	"testing"

	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
)

func testCatalogue() *catalogue.Catalogue {
	cat := catalogue.New()
	bus := cat.AddBus("bus")
	cat.AddCommand(catalogue.Command{Name: "fetch", Writes: []catalogue.ComponentID{bus}})
	cat.AddCommand(catalogue.Command{Name: "load", Reads: []catalogue.ComponentID{bus}})
	cat.AddCommand(catalogue.Command{Name: "halt"})
	return cat
}

func TestNewTable(t *testing.T) {
	p := New()
	if p.Allocated() {
		t.Fatal("Expected no table before NewTable")
	}

	p.NewTable(3)
	if len(p.Opcodes) != 8 {
		t.Fatalf("Expected 8 slots, got %d", len(p.Opcodes))
	}
	for i, op := range p.Opcodes {
		if op.Valid {
			t.Errorf("slot %d should start invalid", i)
		}
		if op.ID != uint(i) {
			t.Errorf("slot %d has id %d", i, op.ID)
		}
	}

	// a second allocation keeps the first table
	p.Opcodes[2].Valid = true
	p.NewTable(5)
	if len(p.Opcodes) != 8 || !p.Opcodes[2].Valid {
		t.Error("Expected NewTable to keep the existing table")
	}
}

func TestOpcodeBounds(t *testing.T) {
	p := New()
	p.NewTable(1)
	if _, ok := p.Opcode(1); !ok {
		t.Error("Expected slot 1 to exist")
	}
	if _, ok := p.Opcode(2); ok {
		t.Error("Expected slot 2 to be out of range")
	}
}

func TestSignature(t *testing.T) {
	op := Opcode{Name: "mov", Arguments: []string{"dst=A", "src=B"}}
	if got := op.Signature(); got != "mov(dst=A, src=B)" {
		t.Errorf("Signature() = %q", got)
	}
	op = Opcode{Name: "halt"}
	if got := op.Signature(); got != "halt" {
		t.Errorf("Signature() = %q", got)
	}
}

func TestDump(t *testing.T) {
	cat := testCatalogue()
	p := New()
	p.HeadBits = []catalogue.CommandID{0, 1}
	p.NewTable(2)
	p.Opcodes[1] = Opcode{
		Valid:     true,
		ID:        1,
		Name:      "stop",
		Arguments: []string{"r=B"},
		Lines: []Line{
			{Valid: true, Low: []catalogue.CommandID{2}, High: []catalogue.CommandID{2}},
			{Valid: true, HasCondition: true, Low: []catalogue.CommandID{0}, High: []catalogue.CommandID{2}},
			{Valid: false},
		},
	}

	var b strings.Builder
	Dump(&b, p, cat)

	want := "header: fetch, load\n" +
		"0b01 stop(r=B)\n" +
		"  0: halt\n" +
		"  1: low  fetch\n" +
		"  1: high halt\n" +
		"  2: <invalid>\n"
	if b.String() != want {
		t.Errorf("Dump mismatch\nwant:\n%s\ngot:\n%s", want, b.String())
	}
}

func TestDumpWithoutOpcodes(t *testing.T) {
	var b strings.Builder
	Dump(&b, New(), testCatalogue())
	if b.String() != "header: \nno opcodes\n" {
		t.Errorf("unexpected dump %q", b.String())
	}
}

func TestDebugDump(t *testing.T) {
	p := New()
	p.NewTable(1)
	p.Opcodes[0].Name = "nop"

	var b strings.Builder
	DebugDump(&b, p)
	if !strings.Contains(b.String(), `Name: (string) (len=3) "nop"`) {
		t.Errorf("Expected spew dump to contain opcode name, got:\n%s", b.String())
	}
}
