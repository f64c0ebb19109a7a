package graph

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// A parseStrategy attempts to extract a graph from text. It reports false
// when the text doesn't look like its format, letting the next strategy
// have a go. Strategies are tried in fixed priority order, first match
// wins, so each rule stays independently testable.
type parseStrategy func(text string) (*Graph, bool)

var strategies = []parseStrategy{
	parseMapping,
	parseEdgeList,
}

// Parse converts a loosely structured textual description into a Graph.
// Markup is flattened to its text content first, since descriptions often
// arrive as scraped page fragments.
func Parse(raw string) (*Graph, error) {
	text := FlattenMarkup(raw)
	for _, try := range strategies {
		if g, ok := try(text); ok {
			return g, nil
		}
	}
	return nil, ParseError{Input: raw}
}

// parseMapping handles adjacency mappings such as
// {"A": ["B", "C"], "B": ["A"]}, with single quotes tolerated. Every key
// and listed neighbor becomes a node, every (key, neighbor) pair a
// directed edge. Key order is preserved by decoding tokens rather than
// unmarshalling into a map.
func parseMapping(text string) (*Graph, bool) {
	open := strings.Index(text, "{")
	closing := strings.LastIndex(text, "}")
	if open == -1 || closing == -1 || closing < open {
		return nil, false
	}
	body := strings.ReplaceAll(text[open:closing+1], "'", `"`)

	dec := json.NewDecoder(strings.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	g := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var neighbors []any
		if err := dec.Decode(&neighbors); err != nil {
			return nil, false
		}
		g.AddNode(key)
		for _, n := range neighbors {
			label, ok := labelOf(n)
			if !ok {
				return nil, false
			}
			g.AddEdge(key, label, false)
		}
	}
	if g.EdgeCount() == 0 {
		return nil, false
	}
	return g, true
}

// labelOf coerces a decoded JSON value into a node label. Numeric nodes
// like 3 are common in puzzle descriptions.
func labelOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}

// edgePattern matches one 'label separator label' occurrence. The arrow
// alternatives come before the bare dash so 'A -> B' binds as an arrow.
var edgePattern = regexp.MustCompile(`([A-Za-z0-9]+)\s*(->|→|-|,)\s*([A-Za-z0-9]+)`)

// parseEdgeList scans for repeated edge tokens such as 'A-B, B-C' or
// 'A -> B'. Dash separated edges get the reverse step inserted, as do
// comma separated ones when the text says 'undirected'. Arrows always
// stay directed.
func parseEdgeList(text string) (*Graph, bool) {
	matches := edgePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, false
	}
	undirected := strings.Contains(strings.ToLower(text), "undirected")
	g := New()
	for _, m := range matches {
		from, sep, to := m[1], m[2], m[3]
		symmetric := sep == "-" || (sep == "," && undirected)
		g.AddEdge(from, to, symmetric)
	}
	return g, true
}

// Vocabulary that marks a grid- or plot-ownership style puzzle, where
// the description names colored or owned cells instead of edges.
var (
	gridHints       = []string{"green", "plot", "cell"}
	gridReferenceRE = regexp.MustCompile(`(green|red|blue|yellow|white|black|owned|earl)`)
)

// GridReferences counts color and ownership vocabulary in the text.
// A count above zero means the text describes a grid-style puzzle that
// the edge strategies cannot turn into a canonical graph.
func GridReferences(raw string) int {
	lowered := strings.ToLower(FlattenMarkup(raw))
	for _, hint := range gridHints {
		if strings.Contains(lowered, hint) {
			return len(gridReferenceRE.FindAllString(lowered, -1))
		}
	}
	return 0
}
