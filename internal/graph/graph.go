// Package graph is a small directed graph used to order the control bits of
// one microcode line.
//
// Node ids are chosen by the caller and only need to be unique within one
// graph. Callers that store two kinds of thing in the same graph keep their
// key spaces disjoint (the line scheduler offsets component ids by the number
// of commands).
package graph

import (
	"fmt"
	"io"
	"strings"
)

// Node is a vertex of the graph
type Node[T any] struct {
	ID   uint
	Name string
	Data T

	// scratch flag used by TopologicalSort, always false between calls
	removed bool
}

// Edge is a directed link between two nodes of the same graph
type Edge[T any] struct {
	Start *Node[T]
	End   *Node[T]
}

// Graph is a directed, possibly cyclic graph that keeps nodes and edges in
// insertion order
type Graph[T any] struct {
	nodes []*Node[T]
	byID  map[uint]*Node[T]
	edges []Edge[T]
	seen  map[[2]uint]struct{}
}

// New creates an empty graph
func New[T any]() *Graph[T] {
	return &Graph[T]{
		nodes: make([]*Node[T], 0),
		byID:  make(map[uint]*Node[T]),
		edges: make([]Edge[T], 0),
		seen:  make(map[[2]uint]struct{}),
	}
}

// AddNode adds a node, or returns the existing node with the same id.
// An existing node keeps its original name and data.
func (g *Graph[T]) AddNode(id uint, name string, data T) *Node[T] {
	if node, ok := g.byID[id]; ok {
		return node
	}
	node := &Node[T]{ID: id, Name: name, Data: data}
	g.nodes = append(g.nodes, node)
	g.byID[id] = node
	return node
}

// Node returns the node with the given id
func (g *Graph[T]) Node(id uint) (*Node[T], bool) {
	node, ok := g.byID[id]
	return node, ok
}

// AddEdge links start to end. Adding the same edge twice is a no-op.
func (g *Graph[T]) AddEdge(start, end *Node[T]) {
	key := [2]uint{start.ID, end.ID}
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.edges = append(g.edges, Edge[T]{Start: start, End: end})
}

// Nodes returns the nodes in insertion order
func (g *Graph[T]) Nodes() []*Node[T] {
	return g.nodes
}

// Edges returns the edges in insertion order
func (g *Graph[T]) Edges() []Edge[T] {
	return g.edges
}

// NodesNoInput returns every active node that has no incoming edge from
// another active node, in insertion order
func (g *Graph[T]) NodesNoInput() []*Node[T] {
	incoming := make(map[uint]bool, len(g.nodes))
	for _, e := range g.edges {
		if !e.Start.removed && !e.End.removed {
			incoming[e.End.ID] = true
		}
	}

	result := make([]*Node[T], 0)
	for _, node := range g.nodes {
		if !node.removed && !incoming[node.ID] {
			result = append(result, node)
		}
	}
	return result
}

// TopologicalSort orders the nodes so that every edge points forwards.
// When several nodes are ready the earliest inserted one is taken first.
// ok is false when the graph contains a cycle, in which case the returned
// slice holds only the nodes that could be ordered before the cycle.
func (g *Graph[T]) TopologicalSort() (sorted []*Node[T], ok bool) {
	defer func() {
		for _, node := range g.nodes {
			node.removed = false
		}
	}()

	inDegree := make(map[uint]int, len(g.nodes))
	successors := make(map[uint][]*Node[T], len(g.nodes))
	for _, e := range g.edges {
		inDegree[e.End.ID]++
		successors[e.Start.ID] = append(successors[e.Start.ID], e.End)
	}

	sorted = make([]*Node[T], 0, len(g.nodes))
	for {
		var next *Node[T]
		for _, node := range g.nodes {
			if !node.removed && inDegree[node.ID] == 0 {
				next = node
				break
			}
		}
		if next == nil {
			break
		}

		next.removed = true
		sorted = append(sorted, next)
		for _, succ := range successors[next.ID] {
			inDegree[succ.ID]--
		}
	}

	return sorted, len(sorted) == len(g.nodes)
}

// Dot writes the graph in graphviz dot format. label describes the data of a
// node and is printed in brackets after its name.
func (g *Graph[T]) Dot(w io.Writer, label func(T) string) {
	name := func(n *Node[T]) string {
		return fmt.Sprintf("%q", fmt.Sprintf("%s (%s)", n.Name, label(n.Data)))
	}

	fmt.Fprintln(w, "digraph g {")
	for _, node := range g.nodes {
		fmt.Fprintf(w, "\t%s;\n", name(node))
	}
	for _, e := range g.edges {
		fmt.Fprintf(w, "\t%s -> %s;\n", name(e.Start), name(e.End))
	}
	fmt.Fprintln(w, "}")
}

// DotString is Dot rendered into a string
func (g *Graph[T]) DotString(label func(T) string) string {
	var b strings.Builder
	g.Dot(&b, label)
	return b.String()
}
