package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/hamcp/internal/presentation/graph"
	"github.com/aretw0/hamcp/internal/presentation/tui"
	"github.com/aretw0/hamcp/pkg/catalog"
)

func newToolsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tool catalog",
		Long: `Prints every tool hamcp advertises with its arguments.
Markdown is rendered for terminals and printed raw when piped.
The mermaid format draws the order in which tools are meant to be called.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "markdown", "md":
				return printToolsMarkdown(out)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog.Tools())
			case "yaml":
				return printToolsYAML(out)
			case "mermaid":
				_, err := io.WriteString(out, graph.GenerateMermaid(catalog.Tools(), catalog.Steps(), nil))
				return err
			default:
				return fmt.Errorf("unknown format %q (supported: markdown, json, yaml, mermaid)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: markdown, json, yaml or mermaid")
	return cmd
}

func printToolsMarkdown(out io.Writer) error {
	md := tui.ToolsMarkdown(catalog.Tools())

	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(out, md)
		return err
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		width = 0
	}
	render, err := tui.NewRenderer(width)
	if err != nil {
		return err
	}
	rendered, err := render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// printToolsYAML goes through JSON so the output keeps the MCP field names.
func printToolsYAML(out io.Writer) error {
	data, err := json.Marshal(catalog.Tools())
	if err != nil {
		return err
	}
	var generic []any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
