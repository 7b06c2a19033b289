// Package schedule orders the control bits of a single microcode line.
//
// Commands and the components they touch become nodes of one graph. A
// component a command depends on points at the command, a command points at
// every component it changes. Sorting that graph gives an order in which each
// command runs after everything that produces its inputs. The sorted order is
// then replayed to check bus usage.
package schedule

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/graph"
)

// NodeKind tells command nodes from component nodes
type NodeKind int

const (
	NodeCommand NodeKind = iota
	NodeComponent
)

func (k NodeKind) String() string {
	switch k {
	case NodeCommand:
		return "Command"
	case NodeComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// HazardKind classifies a bus misuse
type HazardKind int

const (
	// ReadBeforeWrite is a command sampling a bus nothing earlier drove
	ReadBeforeWrite HazardKind = iota
	// WriteTwice is a second command driving an already driven bus
	WriteTwice
)

func (k HazardKind) String() string {
	switch k {
	case ReadBeforeWrite:
		return "read before write"
	case WriteTwice:
		return "write twice"
	default:
		return "unknown"
	}
}

// Hazard is one bus misuse found while replaying a line
type Hazard struct {
	Kind      HazardKind
	Command   catalogue.CommandID
	Component catalogue.ComponentID
}

// Result is the outcome of scheduling one line
type Result struct {
	// command ids in execution order, nil when the line could not be ordered
	Order []catalogue.CommandID
	// false when the dependency graph has a cycle
	Ordered bool
	Hazards []Hazard
	Graph   *graph.Graph[NodeKind]
}

// Valid reports whether the line can be handed to code generation
func (r *Result) Valid() bool {
	return r.Ordered && len(r.Hazards) == 0
}

// Dot renders the dependency graph as graphviz dot text
func (r *Result) Dot() string {
	return r.Graph.DotString(NodeKind.String)
}

// componentNode returns the graph key of a component. Components share the id
// space with commands and are moved past the last command id.
func componentNode(cat *catalogue.Catalogue, comp catalogue.ComponentID) uint {
	return comp + cat.CommandCount()
}

// Line builds, sorts and checks the dependency graph of one line. commands
// must be valid ids of cat.
func Line(cat *catalogue.Catalogue, commands []catalogue.CommandID) *Result {
	g := build(cat, commands)
	result := &Result{Graph: g}

	sorted, ok := g.TopologicalSort()
	if !ok {
		return result
	}
	result.Ordered = true

	result.Order = make([]catalogue.CommandID, 0, len(commands))
	for _, node := range sorted {
		if node.Data == NodeCommand {
			result.Order = append(result.Order, node.ID)
		}
	}

	result.Hazards = checkBuses(cat, result.Order)
	return result
}

func build(cat *catalogue.Catalogue, commands []catalogue.CommandID) *graph.Graph[NodeKind] {
	g := graph.New[NodeKind]()

	component := func(comp catalogue.ComponentID) *graph.Node[NodeKind] {
		return g.AddNode(componentNode(cat, comp), cat.Components[comp].PrintName, NodeComponent)
	}

	for _, id := range commands {
		cmd := &cat.Commands[id]
		node := g.AddNode(id, cmd.Name, NodeCommand)

		for _, comp := range cmd.Depends {
			g.AddEdge(component(comp), node)
		}
		for _, comp := range cmd.Changes {
			g.AddEdge(node, component(comp))
		}
	}

	return g
}

// checkBuses replays an ordered line. Each bus is reported at most once per
// kind of hazard.
func checkBuses(cat *catalogue.Catalogue, order []catalogue.CommandID) []Hazard {
	written := make([]bool, len(cat.Components))
	reported := make(map[Hazard]bool)
	var hazards []Hazard

	report := func(kind HazardKind, cmd catalogue.CommandID, comp catalogue.ComponentID) {
		key := Hazard{Kind: kind, Component: comp}
		if reported[key] {
			return
		}
		reported[key] = true
		hazards = append(hazards, Hazard{Kind: kind, Command: cmd, Component: comp})
	}

	for _, id := range order {
		cmd := &cat.Commands[id]
		for _, bus := range cmd.Reads {
			if !written[bus] {
				report(ReadBeforeWrite, id, bus)
			}
		}
		for _, bus := range cmd.Writes {
			if written[bus] {
				report(WriteTwice, id, bus)
				continue
			}
			written[bus] = true
		}
	}

	return hazards
}

// Describe renders a hazard for messages, e.g. "command 'aToBus' writes to bus 'data' twice"
func Describe(cat *catalogue.Catalogue, h Hazard) string {
	cmd := cat.Commands[h.Command].Name
	bus := cat.Components[h.Component].PrintName
	switch h.Kind {
	case ReadBeforeWrite:
		return fmt.Sprintf("command '%s' reads from bus '%s' before it was written", cmd, bus)
	case WriteTwice:
		return fmt.Sprintf("command '%s' writes to bus '%s' twice", cmd, bus)
	default:
		return fmt.Sprintf("command '%s' misuses bus '%s'", cmd, bus)
	}
}
