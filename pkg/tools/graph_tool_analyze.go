package tools

import (
	"fmt"

	"github.com/lyfegame/simple-gaia-agent/internal/graph"
	"github.com/lyfegame/simple-gaia-agent/pkg/models"
)

type GraphTraversalTool models.Specification

var GraphTraversal = GraphTraversalTool{
	Name: "analyze_graph_traversal",
	Description: "Analyze graph structures and path traversal problems, " +
		"for example Eulerian paths or network connectivity. Accepts an " +
		"adjacency mapping like {\"A\": [\"B\"]} or an edge list like 'A-B, B-C'.",
	Inputs: &models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterObject{
			"graph_data": {
				Type:        "string",
				Description: "Graph representation: adjacency mapping, edge list, or a textual description.",
			},
			"analysis_type": {
				Type:        "string",
				Description: "Type of analysis to run.",
				Enum: &[]string{
					graph.AnalysisPath,
					graph.AnalysisEulerian,
					graph.AnalysisConnectivity,
					graph.AnalysisCycles,
				},
			},
			"start_node": {
				Type:        "string",
				Description: "Starting node for path analysis.",
			},
			"end_node": {
				Type:        "string",
				Description: "Ending node for path analysis.",
			},
		},
		Required: []string{"graph_data"},
	},
}

func (g GraphTraversalTool) Call(input models.Input) (string, error) {
	graphData, ok := input["graph_data"].(string)
	if !ok {
		return "", fmt.Errorf("graph_data must be a string")
	}
	analysisType := graph.AnalysisPath
	if input["analysis_type"] != nil {
		analysisType, ok = input["analysis_type"].(string)
		if !ok {
			return "", fmt.Errorf("analysis_type must be a string")
		}
	}
	startNode := ""
	if input["start_node"] != nil {
		startNode, ok = input["start_node"].(string)
		if !ok {
			return "", fmt.Errorf("start_node must be a string")
		}
	}
	endNode := ""
	if input["end_node"] != nil {
		endNode, ok = input["end_node"].(string)
		if !ok {
			return "", fmt.Errorf("end_node must be a string")
		}
	}

	return graph.Analyze(graphData, analysisType, startNode, endNode), nil
}

func (g GraphTraversalTool) Specification() models.Specification {
	return models.Specification(GraphTraversal)
}
