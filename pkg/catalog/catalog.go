// Package catalog is the fixed, ordered set of tools hamcp advertises.
//
// Tool names are stable identifiers used as dispatch keys and cached by
// clients: they are added, never renamed or repurposed. Every description
// opens with a [READ-ONLY] or [WRITE] tag so an agent can decide whether a
// call needs user approval without making it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrUnknownTool is returned for names outside the catalog.
var ErrUnknownTool = errors.New("unknown tool")

var (
	tools   []mcp.Tool
	index   map[string]int
	schemas map[string]*openapi3.Schema
)

func init() {
	groups := [][]mcp.Tool{
		fileTools,
		entityTools,
		registryTools,
		helperTools,
		automationTools,
		scriptTools,
		backupTools,
		systemTools,
		serviceTools,
		hacsTools,
		addonTools,
		dashboardTools,
		themeTools,
	}
	index = make(map[string]int)
	schemas = make(map[string]*openapi3.Schema)
	for _, g := range groups {
		for _, t := range g {
			if _, dup := index[t.Name]; dup {
				panic(fmt.Sprintf("catalog: duplicate tool %q", t.Name))
			}
			index[t.Name] = len(tools)
			tools = append(tools, t)
			schemas[t.Name] = inputSchema(t)
		}
	}
}

// Tools returns the catalog in advertising order. The returned slice is a
// copy; the tools themselves must be treated as read-only.
func Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(tools))
	copy(out, tools)
	return out
}

// Names returns every tool name in advertising order.
func Names() []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.Name
	}
	return out
}

// Lookup returns the descriptor for name.
func Lookup(name string) (mcp.Tool, bool) {
	i, ok := index[name]
	if !ok {
		return mcp.Tool{}, false
	}
	return tools[i], true
}

// Len reports the number of tools.
func Len() int { return len(tools) }

// Option builders shared by every group. The tag prefix and the MCP hint
// annotations always agree.

func readOnly(name, desc string, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription("[READ-ONLY] " + desc),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

func write(name, desc string, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription("[WRITE] " + desc),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

func destructive(name, desc string, opts ...mcp.ToolOption) mcp.Tool {
	base := []mcp.ToolOption{
		mcp.WithDescription("[WRITE] " + desc + " DESTRUCTIVE - requires approval!"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
	}
	return mcp.NewTool(name, append(base, opts...)...)
}

// changeDescription is accepted by every tool whose change is committed by
// the agent.
var changeDescription = mcp.WithString("description",
	mcp.Description("Short summary of why this change is made. Used as the Git commit message (optional)."),
)

var idsOnly = mcp.WithBoolean("ids_only",
	mcp.Description("Return only identifiers instead of full objects (default: false). Use for large installations."),
)
