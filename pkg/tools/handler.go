package tools

import (
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/lyfegame/simple-gaia-agent/pkg/models"
)

// Registry is the global registry of available LLM tools.
var Registry = NewRegistry()

// Init initializes the global Registry with available local LLM tools.
// If the Registry has already been initialized, it simply returns.
func Init() {
	if Registry.hasBeenInit {
		return
	}
	Registry.hasBeenInit = true
	Registry.Set(GraphTraversal.Specification().Name, GraphTraversal)
}

// Invoke the call, and gather both error and output in the same string.
// A tool-calling loop should always get a usable string back, never an
// error it has to recover from.
func Invoke(call models.Call) string {
	t, exists := Registry.Get(call.Name)
	if !exists {
		return "ERROR: unknown tool call: " + call.Name
	}
	if misc.Truthy(os.Getenv("DEBUG_CALL")) {
		ancli.Noticef("Invoke call: %v", debug.IndentedJsonFmt(call))
	}
	inp := models.Input{}
	if call.Inputs != nil {
		inp = *call.Inputs
	}
	out, err := t.Call(inp)
	if err != nil {
		return fmt.Sprintf("ERROR: failed to run tool: %v, error: %v", call.Name, err)
	}
	return out
}

// ToolFromName returns the Specification of the registered tool with the
// given name, or an empty Specification when no such tool exists.
func ToolFromName(name string) models.Specification {
	t, exists := Registry.Get(name)
	if !exists {
		return models.Specification{}
	}
	return t.Specification()
}
