package graph

import (
	"strings"
	"testing"
)

func TestAnalyze_Connectivity(t *testing.T) {
	report := Analyze("A-B, B-C, C-D", AnalysisConnectivity, "", "")
	wantLines := []string{
		"Graph Traversal Analysis: connectivity",
		"✓ Graph is connected",
		"Connected components: 1",
		"  Component 1: [A B C D]",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line) {
			t.Errorf("report missing %q:\n%s", line, report)
		}
	}
}

func TestAnalyze_Eulerian(t *testing.T) {
	report := Analyze("A-B, B-C, C-D", AnalysisEulerian, "", "")
	if !strings.Contains(report, "→ Must start at A and end at D (or vice versa)") {
		t.Errorf("report missing endpoint line:\n%s", report)
	}
}

func TestAnalyze_PathAnalysis(t *testing.T) {
	report := Analyze("A-B, B-C, A-C", AnalysisPath, "A", "C")
	if !strings.Contains(report, "Shortest path: A → C") {
		t.Errorf("report missing shortest path:\n%s", report)
	}
	if !strings.Contains(report, "  1. A → B → C") {
		t.Errorf("report missing path enumeration:\n%s", report)
	}
}

func TestAnalyze_PathAnalysisMissingEndpoints(t *testing.T) {
	report := Analyze("A-B, B-C", AnalysisPath, "", "")
	if !strings.Contains(report, "start_node and end_node are required") {
		t.Errorf("expected endpoint requirement message, got:\n%s", report)
	}
	if !strings.Contains(report, "[A B C]") {
		t.Errorf("expected valid node listing, got:\n%s", report)
	}
}

func TestAnalyze_InvalidNode(t *testing.T) {
	report := Analyze("A-B, B-C", AnalysisPath, "A", "Q")
	if !strings.Contains(report, `node "Q" does not exist`) {
		t.Errorf("expected missing node diagnostic, got:\n%s", report)
	}
	if !strings.Contains(report, "[A B C]") {
		t.Errorf("expected valid node listing, got:\n%s", report)
	}
}

func TestAnalyze_CycleDetection(t *testing.T) {
	report := Analyze("A->B, B->C, C->A", AnalysisCycles, "", "")
	if !strings.Contains(report, "Cycles found: 1") {
		t.Errorf("report missing cycle count:\n%s", report)
	}
}

func TestAnalyze_UnknownAnalysisType(t *testing.T) {
	report := Analyze("A-B", "degree_histogram", "", "")
	if !strings.Contains(report, "Analysis result: unknown") {
		t.Errorf("expected unknown marker for unknown analysis type, got:\n%s", report)
	}
}

// Parse failures surface as a diagnostic string quoting the input, never
// as a panic or error.
func TestAnalyze_MalformedInput(t *testing.T) {
	input := "hello world no graph here"
	report := Analyze(input, AnalysisConnectivity, "", "")
	if !strings.Contains(report, "could not parse graph structure") {
		t.Errorf("expected parse diagnostic, got:\n%s", report)
	}
	if !strings.Contains(report, input) {
		t.Errorf("expected input echo, got:\n%s", report)
	}
}

func TestAnalyze_GridAdvisory(t *testing.T) {
	input := "Earl owns the green plots in a grid of cells and wants to visit each plot exactly once without backtracking"
	report := Analyze(input, AnalysisEulerian, "", "")
	wantLines := []string{
		"GRID-BASED GRAPH DETECTED:",
		"color/ownership references",
		"EULERIAN PATH ANALYSIS:",
		"1. The graph must have exactly 0 or 2 vertices with odd degree",
		"2. All owned cells must be connected",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line) {
			t.Errorf("advisory missing %q:\n%s", line, report)
		}
	}
}

func TestAnalyze_GridAdvisoryOtherTypes(t *testing.T) {
	input := "Earl owns the green plots in a grid of cells"
	report := Analyze(input, AnalysisConnectivity, "", "")
	if !strings.Contains(report, "GRID-BASED GRAPH DETECTED:") {
		t.Errorf("expected grid advisory, got:\n%s", report)
	}
	if !strings.Contains(report, "only an advisory") {
		t.Errorf("expected advisory-only note for non-Eulerian analysis, got:\n%s", report)
	}
}
