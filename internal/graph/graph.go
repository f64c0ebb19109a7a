package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is a single declared edge, before any undirected symmetrization.
type Edge struct {
	From string
	To   string
}

// Graph holds a node set and an adjacency mapping. Neighbor lists keep
// insertion order and duplicates, so parallel edges count towards degree.
// A Graph is built once by the parser and never mutated by analyzers.
type Graph struct {
	order []string
	adj   map[string][]string
	edges []Edge
}

func New() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// AddNode registers label as a node if it isn't one already.
func (g *Graph) AddNode(label string) {
	if _, ok := g.adj[label]; ok {
		return
	}
	g.adj[label] = nil
	g.order = append(g.order, label)
}

// AddEdge declares an edge from -> to. When symmetric is set the reverse
// step is inserted as well, but only one declared edge is recorded.
func (g *Graph) AddEdge(from, to string, symmetric bool) {
	g.AddNode(from)
	g.AddNode(to)
	g.adj[from] = append(g.adj[from], to)
	if symmetric {
		g.adj[to] = append(g.adj[to], from)
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Has reports whether label is a node of the graph.
func (g *Graph) Has(label string) bool {
	_, ok := g.adj[label]
	return ok
}

// Nodes returns the node labels in first-seen order.
func (g *Graph) Nodes() []string {
	cp := make([]string, len(g.order))
	copy(cp, g.order)
	return cp
}

// SortedNodes returns the node labels sorted lexicographically, for
// deterministic rendering.
func (g *Graph) SortedNodes() []string {
	cp := g.Nodes()
	sort.Strings(cp)
	return cp
}

// Neighbors returns the adjacency list of label in insertion order.
func (g *Graph) Neighbors(label string) []string {
	return g.adj[label]
}

// Degree is the number of adjacency entries for label. For undirected
// input this counts incident edges after symmetrization, for directed
// input it is the out-degree.
func (g *Graph) Degree(label string) int {
	return len(g.adj[label])
}

// Degrees maps every node to its degree.
func (g *Graph) Degrees() map[string]int {
	degrees := make(map[string]int, len(g.order))
	for _, n := range g.order {
		degrees[n] = len(g.adj[n])
	}
	return degrees
}

func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount is the number of declared edges, not adjacency entries.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns the declared edges in declaration order.
func (g *Graph) Edges() []Edge {
	cp := make([]Edge, len(g.edges))
	copy(cp, g.edges)
	return cp
}

// HasArc reports whether a single directed step from -> to exists in the
// adjacency mapping.
func (g *Graph) HasArc(from, to string) bool {
	for _, n := range g.adj[from] {
		if n == to {
			return true
		}
	}
	return false
}

// EdgeList renders every adjacency arc as 'from -> to', comma separated.
// Feeding the result back through Parse reproduces an equivalent graph,
// since arrows parse as directed arcs.
func (g *Graph) EdgeList() string {
	var arcs []string
	for _, from := range g.order {
		for _, to := range g.adj[from] {
			arcs = append(arcs, fmt.Sprintf("%s -> %s", from, to))
		}
	}
	return strings.Join(arcs, ", ")
}

// undirectedNeighbors builds the undirected closure of the adjacency
// mapping: for every arc a -> b, b also reaches a. Used by connectivity
// style traversals, which model physical movement rather than directed
// reachability.
func (g *Graph) undirectedNeighbors() map[string][]string {
	closure := make(map[string][]string, len(g.order))
	for _, from := range g.order {
		closure[from] = append([]string(nil), g.adj[from]...)
	}
	for _, from := range g.order {
		for _, to := range g.adj[from] {
			if !g.HasArc(to, from) {
				closure[to] = append(closure[to], from)
			}
		}
	}
	return closure
}
