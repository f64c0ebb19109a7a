package graph

import "fmt"

// echoLimit bounds how much of the raw input is quoted back in errors.
const echoLimit = 200

// ParseError means no recognizable graph structure could be extracted.
// The message quotes a truncated prefix of the offending input so that a
// tool-calling loop can see what it sent.
type ParseError struct {
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("could not parse graph structure from: %s", truncate(e.Input, echoLimit))
}

// InvalidNodeError means a caller-supplied start or end node is not part
// of the parsed graph.
type InvalidNodeError struct {
	Node  string
	Valid []string
}

func (e InvalidNodeError) Error() string {
	return fmt.Sprintf("node %q does not exist in the graph, valid nodes: %v", e.Node, e.Valid)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
