package graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Analyze parses description into a graph, runs the analyzer selected by
// analysisType and renders the report. It is the module boundary for
// tool-calling loops: every failure comes back as a plain-text
// diagnostic, never as an error, so a retrieval loop always receives a
// usable string.
func Analyze(description, analysisType, startNode, endNode string) string {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.Noticef("graph traversal analysis, type: %v\n", analysisType)
	}

	g, err := Parse(description)
	if err != nil {
		if GridReferences(description) > 0 {
			return gridAdvisory(description, analysisType)
		}
		return err.Error()
	}

	switch analysisType {
	case AnalysisEulerian:
		return Format(analysisType, g, Euler(g))
	case AnalysisConnectivity:
		return Format(analysisType, g, Components(g))
	case AnalysisCycles:
		return Format(analysisType, g, Cycles(g))
	case AnalysisPath:
		if startNode == "" || endNode == "" {
			return fmt.Sprintf("start_node and end_node are required for path_analysis, valid nodes: %v", g.SortedNodes())
		}
		shortest, err := ShortestPath(g, startNode, endNode)
		if err != nil {
			return err.Error()
		}
		all, err := AllPaths(g, startNode, endNode, DefaultMaxPaths)
		if err != nil {
			return err.Error()
		}
		return Format(analysisType, g, PathAnalysis{
			Start:    startNode,
			End:      endNode,
			Shortest: shortest,
			All:      all,
		})
	default:
		return Format(analysisType, g, nil)
	}
}

// gridAdvisory handles plot-ownership style puzzle text, where the
// description names colored or owned cells rather than edges. No
// geometric graph is reconstructed. The report counts the ownership
// references and, for Eulerian questions, lists the conditions the grid
// must meet, leaving the actual check to the reader.
func gridAdvisory(description, analysisType string) string {
	var sb strings.Builder
	writeHeader(&sb, analysisType)
	section(&sb, "GRID-BASED GRAPH DETECTED:")
	fmt.Fprintf(&sb, "Grid elements found: %d color/ownership references\n", GridReferences(description))

	if analysisType == AnalysisEulerian {
		sb.WriteString("\nEULERIAN PATH ANALYSIS:\n")
		sb.WriteString("For a grid traversal to be possible without backtracking:\n")
		sb.WriteString("1. The graph must have exactly 0 or 2 vertices with odd degree\n")
		sb.WriteString("2. All owned cells must be connected\n")
		sb.WriteString("3. Starting/ending points must have odd degree\n")
	} else {
		sb.WriteString("\nThis description has no explicit edges, so only an advisory\n")
		sb.WriteString("Eulerian checklist is available. Provide an adjacency mapping\n")
		sb.WriteString("or an edge list for a full analysis.\n")
	}
	return sb.String()
}
