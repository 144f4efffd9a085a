package graph

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/hamcp/pkg/catalog"
)

// Highlight marks tools to emphasise on the graph, e.g. the ones a client
// called in a session.
type Highlight struct {
	Called  []string
	Current string
}

// GenerateMermaid produces a Mermaid flowchart of the call order between
// tools. Only tools that take part in a step are drawn. Shapes follow the
// tool's classification:
// - Read-only: [/Parallelogram/]
// - Write: [[Subroutine]]
// - Destructive: {{Hexagon}}
func GenerateMermaid(tools []mcp.Tool, steps []catalog.Step, hl *Highlight) string {
	byName := make(map[string]mcp.Tool, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	drawn := make(map[string]bool)
	node := func(name string) {
		if drawn[name] {
			return
		}
		drawn[name] = true
		opener, closer := "[", "]"
		if t, ok := byName[name]; ok {
			opener, closer = shape(t)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(name), opener, name, closer)
	}

	for _, s := range steps {
		node(s.Before)
		node(s.After)
	}
	sb.WriteString("\n")
	for _, s := range steps {
		arrow := "-->"
		if s.Label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(s.Label, "\"", "'"))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(s.Before), arrow, sanitizeMermaidID(s.After))
	}

	if hl != nil {
		sb.WriteString("\n    %% Highlight Styles\n")
		// Black text keeps contrast on light fills under both themes.
		sb.WriteString("    classDef called fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range hl.Called {
			id := sanitizeMermaidID(name)
			if id == "" || seen[id] || !drawn[name] {
				continue
			}
			seen[id] = true
			fmt.Fprintf(&sb, "    class %s called;\n", id)
		}
		if hl.Current != "" && drawn[hl.Current] {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(hl.Current))
		}
	}

	return sb.String()
}

func shape(t mcp.Tool) (string, string) {
	ann := t.Annotations
	switch {
	case ann.DestructiveHint != nil && *ann.DestructiveHint:
		return "{{", "}}"
	case ann.ReadOnlyHint != nil && *ann.ReadOnlyHint:
		return "[/", "/]"
	default:
		return "[[", "]]"
	}
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_").Replace(id)
}
