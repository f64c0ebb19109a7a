package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/lyfegame/simple-gaia-agent/internal/graph"
	"github.com/lyfegame/simple-gaia-agent/pkg/models"
	"github.com/lyfegame/simple-gaia-agent/pkg/tools"
)

const usage = `gaia-graph - graph traversal analyzer

Parses a loosely structured graph description (adjacency mapping, edge
list, or a plot-ownership style puzzle text) and reports on its
structure. Reports are plain text, also when parsing fails, so the
output can be fed straight back into a tool-calling loop.

Usage: gaia-graph [flags] <command>

Flags:
  -t, -type string    Set the analysis to run: path_analysis, eulerian_path, connectivity or cycle_detection. (default '%v')
  -s, -start string   Set the starting node for path_analysis.
  -e, -end string     Set the ending node for path_analysis.
  -i bool             Set to true to read the graph description from stdin instead of the arguments. (default %v)

Commands:
  h|help                      Display this help message
  a|analyze <description>     Analyze the given graph description
  t|tools                     Print the specifications of the available LLM tools

Examples:
  - gaia-graph analyze "A-B, B-C, C-D"
  - gaia-graph -type eulerian_path analyze "A-B, B-C, C-A"
  - gaia-graph -type path_analysis -start A -end C analyze "A-B, B-C, A-C"
  - cat description.txt | gaia-graph -type connectivity -i analyze
  - gaia-graph tools
`

func main() {
	ancli.SetupSlog()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("gaia-graph", flag.ContinueOnError)
	typeShort := fs.String("t", graph.AnalysisPath, "Set the analysis to run. Mutually exclusive with type flag.")
	typeLong := fs.String("type", graph.AnalysisPath, "Set the analysis to run. Mutually exclusive with t flag.")
	startShort := fs.String("s", "", "Set the starting node for path_analysis. Mutually exclusive with start flag.")
	startLong := fs.String("start", "", "Set the starting node for path_analysis. Mutually exclusive with s flag.")
	endShort := fs.String("e", "", "Set the ending node for path_analysis. Mutually exclusive with end flag.")
	endLong := fs.String("end", "", "Set the ending node for path_analysis. Mutually exclusive with e flag.")
	fromStdin := fs.Bool("i", false, "Set to true to read the graph description from stdin.")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	analysisType := pickFlag(*typeShort, *typeLong, graph.AnalysisPath)
	startNode := pickFlag(*startShort, *startLong, "")
	endNode := pickFlag(*endShort, *endLong, "")

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage()
		return 0
	}

	switch rest[0] {
	case "h", "help":
		printUsage()
		return 0
	case "t", "tools":
		return printTools()
	case "a", "analyze":
		description := strings.Join(rest[1:], " ")
		if *fromStdin {
			stdin, err := io.ReadAll(os.Stdin)
			if err != nil {
				ancli.PrintErr(fmt.Sprintf("failed to read stdin: %v\n", err))
				return 1
			}
			description = strings.TrimSpace(string(stdin))
		}
		if description == "" {
			ancli.PrintErr("no graph description given, see 'gaia-graph help'\n")
			return 1
		}
		return analyze(description, analysisType, startNode, endNode)
	default:
		ancli.PrintErr(fmt.Sprintf("unknown command: %v, see 'gaia-graph help'\n", rest[0]))
		return 1
	}
}

// pickFlag resolves a short/long flag pair, preferring whichever one was
// changed from its default.
func pickFlag(short, long, defaultVal string) string {
	if short != defaultVal {
		return short
	}
	return long
}

func analyze(description, analysisType, startNode, endNode string) int {
	tools.Init()
	inputs := models.Input{
		"graph_data":    description,
		"analysis_type": analysisType,
	}
	if startNode != "" {
		inputs["start_node"] = startNode
	}
	if endNode != "" {
		inputs["end_node"] = endNode
	}
	out := tools.Invoke(models.Call{
		Name:   string(models.GraphTraversalTool),
		Inputs: &inputs,
	})
	fmt.Println(out)
	if strings.HasPrefix(out, "ERROR:") {
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("analysis done\n")
	}
	return 0
}

func printTools() int {
	tools.Init()
	all := tools.Registry.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spec, err := json.MarshalIndent(all[name].Specification(), "", "  ")
		if err != nil {
			ancli.PrintErr(fmt.Sprintf("failed to marshal tool %v: %v\n", name, err))
			return 1
		}
		fmt.Println(string(spec))
	}
	return 0
}

func printUsage() {
	fmt.Printf(usage, graph.AnalysisPath, false)
}
