package graph

// EulerianKind classifies a graph's Eulerian traversal options.
type EulerianKind string

const (
	EulerianCycle EulerianKind = "cycle"
	EulerianPath  EulerianKind = "path"
	EulerianNone  EulerianKind = "none"
)

// Eulerian is the result of classifying a graph against Euler's theorem.
// RequiredEndpoints is set only for Kind == EulerianPath and names the
// two odd-degree nodes in first-seen order.
type Eulerian struct {
	Kind              EulerianKind
	RequiredEndpoints *[2]string
	OddDegreeNodes    []string
	Connected         bool
}

// Euler classifies the graph. Degree is taken over the adjacency mapping
// exactly as parsed, so undirected symmetrization counts both steps of an
// edge. A connected graph with zero odd-degree nodes has an Eulerian
// cycle, with exactly two an Eulerian path between those two nodes, and
// anything else has neither.
func Euler(g *Graph) Eulerian {
	var odd []string
	for _, n := range g.order {
		if g.Degree(n)%2 == 1 {
			odd = append(odd, n)
		}
	}

	result := Eulerian{
		Kind:           EulerianNone,
		OddDegreeNodes: odd,
		Connected:      connected(g),
	}
	if !result.Connected {
		return result
	}
	switch len(odd) {
	case 0:
		result.Kind = EulerianCycle
	case 2:
		result.Kind = EulerianPath
		result.RequiredEndpoints = &[2]string{odd[0], odd[1]}
	}
	return result
}
