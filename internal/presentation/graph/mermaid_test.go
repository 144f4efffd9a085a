package graph_test

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/hamcp/internal/presentation/graph"
	"github.com/aretw0/hamcp/pkg/catalog"
)

func TestGenerateMermaid(t *testing.T) {
	tools := []mcp.Tool{
		mcp.NewTool("read", mcp.WithReadOnlyHintAnnotation(true), mcp.WithDestructiveHintAnnotation(false)),
		mcp.NewTool("write", mcp.WithReadOnlyHintAnnotation(false), mcp.WithDestructiveHintAnnotation(false)),
		mcp.NewTool("wipe", mcp.WithReadOnlyHintAnnotation(false), mcp.WithDestructiveHintAnnotation(true)),
		mcp.NewTool("unused", mcp.WithReadOnlyHintAnnotation(true)),
	}

	tests := []struct {
		name     string
		steps    []catalog.Step
		hl       *graph.Highlight
		contains []string
		excludes []string
	}{
		{
			name:  "Shapes",
			steps: []catalog.Step{{Before: "read", After: "write"}, {Before: "write", After: "wipe"}},
			contains: []string{
				`read[/"read"/]`,
				`write[["write"]]`,
				`wipe{{"wipe"}}`,
				"read --> write",
			},
			excludes: []string{"unused"},
		},
		{
			name:     "Label Escaping",
			steps:    []catalog.Step{{Before: "read", After: "write", Label: `say "ok"`}},
			contains: []string{`read -- "say 'ok'" --> write`},
		},
		{
			name:     "ID Sanitization",
			steps:    []catalog.Step{{Before: "a.b", After: "c-d"}},
			contains: []string{`a_b["a.b"]`, "a_b --> c_d"},
		},
		{
			name:  "Highlight",
			steps: []catalog.Step{{Before: "read", After: "write"}},
			hl:    &graph.Highlight{Called: []string{"read", "read", "unused"}, Current: "write"},
			contains: []string{
				"class read called;",
				"class write current;",
			},
			excludes: []string{"class unused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tools, tt.steps, tt.hl)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, got, not)
			}
		})
	}
}

func TestGenerateMermaid_HighlightDeduplicates(t *testing.T) {
	steps := []catalog.Step{{Before: "a", After: "b"}}
	got := graph.GenerateMermaid(nil, steps, &graph.Highlight{Called: []string{"a", "a", "b"}})
	assert.Equal(t, 1, strings.Count(got, "class a called;"))
	assert.Contains(t, got, `a["a"]`)
}

func TestGenerateMermaid_Catalog(t *testing.T) {
	got := graph.GenerateMermaid(catalog.Tools(), catalog.Steps(), nil)
	assert.Contains(t, got, `ha_check_config -- "valid" --> ha_reload_config`)
	assert.Contains(t, got, `ha_git_rollback{{"ha_git_rollback"}}`)
}
