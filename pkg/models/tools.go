package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ToolName is an enum-like type for available tools.
type ToolName string

const (
	GraphTraversalTool ToolName = "analyze_graph_traversal"
)

type Input map[string]any

// Call is one tool invocation as requested by a model: which tool to
// run and with what inputs.
type Call struct {
	ID       string        `json:"id,omitempty"`
	Name     string        `json:"name,omitempty"`
	Type     string        `json:"type,omitempty"`
	Inputs   *Input        `json:"inputs,omitempty"`
	Function Specification `json:"function,omitempty"`
}

// PrettyPrint the call, showing name and what input params is used
// on a concise way
func (c Call) PrettyPrint() string {
	paramStr := ""
	i := 0
	var inp Input
	if c.Inputs != nil {
		inp = *c.Inputs
	}
	lenInp := len(inp)
	for flag, val := range inp {
		paramStr += fmt.Sprintf("'%v': '%v'", flag, val)
		if i < lenInp-1 {
			paramStr += ","
		}
		i++
	}

	return fmt.Sprintf("Call: '%s', inputs: [ %s ]", c.Name, paramStr)
}

func (c Call) JSON() string {
	json, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("ERROR: Failed to unmarshal: %v", err)
	}
	return string(json)
}

// Specification describes a tool to a model: its name, what it does and
// the schema of its inputs.
type Specification struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Inputs      *InputSchema `json:"input_schema,omitempty"`
}

type InputSchema struct {
	Type       string                     `json:"type"`
	Required   []string                   `json:"required"`
	Properties map[string]ParameterObject `json:"properties"`
}

// Patch the input schema, padding initialization inconsistencies from
// deserialized tool configs.
func (is *InputSchema) Patch() {
	if is.Required == nil {
		is.Required = make([]string, 0)
	}
	if is.Properties == nil {
		is.Properties = make(map[string]ParameterObject)
	}
	if is.Type == "" {
		is.Type = "object"
	}
}

type ParameterObject struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Enum        *[]string `json:"enum,omitempty"`
}

// LLMTool is a locally runnable tool which can be described to, and then
// invoked by, a text model.
type LLMTool interface {
	// Call the tool with the given Input. Returns output from the tool
	// or an error if the call returned an error-like.
	Call(Input) (string, error)

	// Specification returns the schema sent to the model.
	Specification() Specification
}

// ValidationError means a Call arrived without its required fields.
type ValidationError struct {
	fieldsMissing []string
}

func NewValidationError(fieldsMissing []string) error {
	// Sort for deterministic error print
	slices.Sort(fieldsMissing)
	return ValidationError{fieldsMissing: fieldsMissing}
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("validation error, fields missing: %v", v.fieldsMissing)
}
