package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

// errCallFailed is returned after an error result has been printed.
var errCallFailed = errors.New("tool call failed")

func newCallCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments | -]",
		Short: "Invoke one tool and print its result",
		Long: `Runs a single tool through the same dispatcher the MCP server uses.
Arguments are a JSON object, read from stdin when given as "-".
Without arguments an empty object is sent.`,
		Example: `  hamcp call ha_get_entity_state '{"entity_id": "light.kitchen"}'
  hamcp call ha_git_history '{"limit": 5}'
  echo '{"path": "configuration.yaml"}' | hamcp call ha_read_file -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := parseToolArgs(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			res := a.dispatcher().Dispatch(cmd.Context(), args[0], toolArgs)
			for _, c := range res.Content {
				if text, ok := c.(mcp.TextContent); ok {
					fmt.Fprintln(cmd.OutOrStdout(), text.Text)
				}
			}
			if res.IsError {
				return errCallFailed
			}
			return nil
		},
	}
}

func parseToolArgs(stdin io.Reader, rest []string) (map[string]any, error) {
	raw := "{}"
	if len(rest) == 1 {
		raw = rest[0]
		if raw == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read arguments: %w", err)
			}
			raw = string(data)
		}
	}
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
