package graph

// DefaultMaxPaths caps how many paths the all-paths enumeration collects
// unless the caller asks otherwise. Dense graphs have exponentially many
// simple paths, so the cap is a hard bound, not a hint.
const DefaultMaxPaths = 10

// ShortestPath finds a minimum-edge-count path from start to end using
// breadth-first search, expanding neighbors in adjacency insertion order.
// It returns nil when end is unreachable, and the single-node path when
// start equals end. An InvalidNodeError is returned when either endpoint
// is not in the graph.
func ShortestPath(g *Graph, start, end string) ([]string, error) {
	if err := checkNodes(g, start, end); err != nil {
		return nil, err
	}
	if start == end {
		return []string{start}, nil
	}

	type item struct {
		node string
		path []string
	}
	visited := make(map[string]bool, g.NodeCount())
	queue := []item{{node: start, path: []string{start}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true

		for _, neighbor := range g.Neighbors(cur.node) {
			if neighbor == end {
				return appendNode(cur.path, neighbor), nil
			}
			if !visited[neighbor] {
				queue = append(queue, item{node: neighbor, path: appendNode(cur.path, neighbor)})
			}
		}
	}
	return nil, nil
}

// AllPaths enumerates simple paths from start to end depth-first, in
// adjacency insertion order, stopping as soon as maxPaths paths have been
// collected. The per-path visited set is restored on backtrack, so a node
// used on one branch stays eligible on another. Uses an explicit frame
// stack so large graphs can't blow the call stack.
func AllPaths(g *Graph, start, end string, maxPaths int) ([][]string, error) {
	if err := checkNodes(g, start, end); err != nil {
		return nil, err
	}
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}
	if start == end {
		return [][]string{{start}}, nil
	}

	type frame struct {
		node string
		next int
	}
	var found [][]string
	path := []string{start}
	visited := map[string]bool{start: true}
	stack := []frame{{node: start}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		neighbors := g.Neighbors(f.node)
		descended := false
		for f.next < len(neighbors) {
			neighbor := neighbors[f.next]
			f.next++
			if neighbor == end {
				found = append(found, appendNode(path, neighbor))
				if len(found) >= maxPaths {
					return found, nil
				}
				continue
			}
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			path = append(path, neighbor)
			stack = append(stack, frame{node: neighbor})
			descended = true
			break
		}
		if descended {
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			visited[path[len(path)-1]] = false
			path = path[:len(path)-1]
		}
	}
	return found, nil
}

func checkNodes(g *Graph, nodes ...string) error {
	for _, n := range nodes {
		if !g.Has(n) {
			return InvalidNodeError{Node: n, Valid: g.SortedNodes()}
		}
	}
	return nil
}

// appendNode copies path with node appended, keeping queued paths
// independent of later mutation.
func appendNode(path []string, node string) []string {
	cp := make([]string, len(path)+1)
	copy(cp, path)
	cp[len(path)] = node
	return cp
}
