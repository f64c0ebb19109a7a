package graph

// Connectivity is the result of a connected-components analysis.
// Components appear in discovery order, nodes within a component in the
// order the traversal reached them.
type Connectivity struct {
	Connected  bool
	Components [][]string
}

// Components splits the graph into connected components using iterative
// depth-first traversal over the undirected closure. Connectivity always
// treats edges as two-way regardless of how they were declared: the
// domain's questions are about physical traversal, not directed
// reachability.
func Components(g *Graph) Connectivity {
	closure := g.undirectedNeighbors()
	visited := make(map[string]bool, g.NodeCount())
	var components [][]string

	for _, start := range g.order {
		if visited[start] {
			continue
		}
		var component []string
		stack := []string{start}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[node] {
				continue
			}
			visited[node] = true
			component = append(component, node)
			for _, neighbor := range closure[node] {
				if !visited[neighbor] {
					stack = append(stack, neighbor)
				}
			}
		}
		components = append(components, component)
	}

	return Connectivity{
		Connected:  len(components) == 1,
		Components: components,
	}
}

// connected is a shortcut for the analyzers that only need the boolean.
func connected(g *Graph) bool {
	if g.NodeCount() == 0 {
		return true
	}
	return Components(g).Connected
}
