package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolsMarkdown renders a tool list as a markdown document: one section per
// tool with its description and an argument table.
func ToolsMarkdown(tools []mcp.Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tools (%d)\n\n", len(tools))

	for _, t := range tools {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", t.Name, t.Description)
		if len(t.InputSchema.Properties) == 0 {
			b.WriteString("_No arguments._\n\n")
			continue
		}

		required := make(map[string]bool, len(t.InputSchema.Required))
		for _, r := range t.InputSchema.Required {
			required[r] = true
		}
		names := make([]string, 0, len(t.InputSchema.Properties))
		for name := range t.InputSchema.Properties {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if required[names[i]] != required[names[j]] {
				return required[names[i]]
			}
			return names[i] < names[j]
		})

		b.WriteString("| Argument | Type | Required | Description |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, name := range names {
			prop, _ := t.InputSchema.Properties[name].(map[string]any)
			typ, _ := prop["type"].(string)
			desc, _ := prop["description"].(string)
			if enum, ok := prop["enum"].([]string); ok {
				desc = strings.TrimSpace(desc + " One of: " + strings.Join(enum, ", ") + ".")
			}
			req := ""
			if required[name] {
				req = "yes"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", name, typ, req, escapeCell(desc))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
