package graph

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Analysis modes accepted by Analyze and rendered by Format.
const (
	AnalysisPath         = "path_analysis"
	AnalysisEulerian     = "eulerian_path"
	AnalysisConnectivity = "connectivity"
	AnalysisCycles       = "cycle_detection"
)

// cycleDisplayCap limits how many detected cycles the report lists.
const cycleDisplayCap = 5

// PathAnalysis bundles the two path queries for formatting.
type PathAnalysis struct {
	Start    string
	End      string
	Shortest []string
	All      [][]string
}

// Format renders an analyzer result into the report for analysisType.
// It is a total function: a result it doesn't recognize renders as an
// explicit unknown marker instead of failing.
func Format(analysisType string, g *Graph, result any) string {
	var sb strings.Builder
	writeHeader(&sb, analysisType)
	writeStructure(&sb, g)

	switch r := result.(type) {
	case Eulerian:
		writeEulerian(&sb, r)
	case Connectivity:
		writeConnectivity(&sb, r)
	case PathAnalysis:
		writePaths(&sb, r)
	case [][]string:
		writeCycles(&sb, r)
	default:
		sb.WriteString("Analysis result: unknown\n")
	}
	return sb.String()
}

func writeHeader(sb *strings.Builder, analysisType string) {
	fmt.Fprintf(sb, "Graph Traversal Analysis: %s\n", analysisType)
	sb.WriteString(strings.Repeat("=", 50) + "\n")
}

func section(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", len(title)) + "\n")
}

func writeStructure(sb *strings.Builder, g *Graph) {
	section(sb, "GRAPH STRUCTURE:")
	fmt.Fprintf(sb, "Nodes: %v\n", g.SortedNodes())
	fmt.Fprintf(sb, "Total nodes: %d\n", g.NodeCount())
	fmt.Fprintf(sb, "Total edges: %d\n", g.EdgeCount())

	degrees := g.Degrees()
	labels := maps.Keys(degrees)
	sort.Strings(labels)
	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%d", label, degrees[label]))
	}
	fmt.Fprintf(sb, "Node degrees: %s\n\n", strings.Join(pairs, ", "))
}

func writeEulerian(sb *strings.Builder, r Eulerian) {
	section(sb, "EULERIAN PATH ANALYSIS:")
	fmt.Fprintf(sb, "Odd degree nodes: %v (count: %d)\n", r.OddDegreeNodes, len(r.OddDegreeNodes))

	switch r.Kind {
	case EulerianCycle:
		sb.WriteString("✓ Eulerian CYCLE exists (all nodes have even degree)\n")
		sb.WriteString("→ Can start and end at same node\n")
	case EulerianPath:
		sb.WriteString("✓ Eulerian PATH exists (exactly 2 nodes have odd degree)\n")
		fmt.Fprintf(sb, "→ Must start at %s and end at %s (or vice versa)\n",
			r.RequiredEndpoints[0], r.RequiredEndpoints[1])
	default:
		sb.WriteString("✗ No Eulerian path exists\n")
		sb.WriteString("→ Impossible to traverse all edges exactly once\n")
	}

	if r.Connected {
		sb.WriteString("✓ Graph is connected\n")
	} else {
		sb.WriteString("✗ Graph is not connected - no Eulerian path possible\n")
	}
}

func writeConnectivity(sb *strings.Builder, r Connectivity) {
	section(sb, "CONNECTIVITY ANALYSIS:")
	if r.Connected {
		sb.WriteString("✓ Graph is connected\n")
	} else {
		sb.WriteString("✗ Graph is not connected\n")
	}
	fmt.Fprintf(sb, "Connected components: %d\n", len(r.Components))
	for i, component := range r.Components {
		sorted := append([]string(nil), component...)
		sort.Strings(sorted)
		fmt.Fprintf(sb, "  Component %d: %v\n", i+1, sorted)
	}
}

func writePaths(sb *strings.Builder, r PathAnalysis) {
	section(sb, fmt.Sprintf("PATH ANALYSIS: %s → %s", r.Start, r.End))
	if r.Shortest != nil {
		fmt.Fprintf(sb, "Shortest path: %s\n", strings.Join(r.Shortest, " → "))
		fmt.Fprintf(sb, "Path length: %d edges\n", len(r.Shortest)-1)
	} else {
		fmt.Fprintf(sb, "No path exists between %s and %s\n", r.Start, r.End)
	}
	if len(r.All) > 0 {
		fmt.Fprintf(sb, "\nAll paths (max %d):\n", DefaultMaxPaths)
		for i, path := range r.All {
			fmt.Fprintf(sb, "  %d. %s\n", i+1, strings.Join(path, " → "))
		}
	}
}

func writeCycles(sb *strings.Builder, cycles [][]string) {
	section(sb, "CYCLE DETECTION:")
	if len(cycles) == 0 {
		sb.WriteString("No cycles detected (graph is acyclic)\n")
		return
	}
	fmt.Fprintf(sb, "Cycles found: %d\n", len(cycles))
	shown := cycles
	if len(shown) > cycleDisplayCap {
		shown = shown[:cycleDisplayCap]
	}
	for i, cycle := range shown {
		closed := append(append([]string(nil), cycle...), cycle[0])
		fmt.Fprintf(sb, "  %d. %s\n", i+1, strings.Join(closed, " → "))
	}
}
