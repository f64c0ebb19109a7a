package graph

// Cycles runs a depth-first search that records a cycle whenever it steps
// onto a node currently on the recursion stack, the cycle being the stack
// slice from that node to the current one. This is a best-effort
// detector: distinct cycles sharing a segment can come back as near
// duplicates, and the listing is not a minimal cycle basis. Uses an
// explicit frame stack to keep recursion depth independent of graph size.
func Cycles(g *Graph) [][]string {
	visited := make(map[string]bool, g.NodeCount())
	onStack := make(map[string]bool, g.NodeCount())
	var cycles [][]string

	type frame struct {
		node string
		next int
	}

	for _, root := range g.order {
		if visited[root] {
			continue
		}
		var stack []frame
		var path []string

		enter := func(node string) bool {
			if onStack[node] {
				for i, p := range path {
					if p == node {
						cycles = append(cycles, append([]string(nil), path[i:]...))
						break
					}
				}
				return false
			}
			if visited[node] {
				return false
			}
			visited[node] = true
			onStack[node] = true
			path = append(path, node)
			stack = append(stack, frame{node: node})
			return true
		}

		enter(root)
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			neighbors := g.Neighbors(f.node)
			if f.next < len(neighbors) {
				neighbor := neighbors[f.next]
				f.next++
				enter(neighbor)
				continue
			}
			onStack[f.node] = false
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}
	return cycles
}

// ValidCycle reports whether seq is a closed walk in the graph: every
// consecutive pair, including the wrap from last back to first, is an
// adjacency step. Used by tests to assert detector soundness.
func ValidCycle(g *Graph, seq []string) bool {
	if len(seq) == 0 {
		return false
	}
	for i := range seq {
		next := seq[(i+1)%len(seq)]
		if !g.HasArc(seq[i], next) {
			return false
		}
	}
	return true
}
