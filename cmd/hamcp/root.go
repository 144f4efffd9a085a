package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	agentURL   string
	logLevel   string
	logFormat  string
	timeout    time.Duration
}

// NewRootCmd builds the hamcp command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "hamcp",
		Short: "hamcp exposes a Home Assistant agent as MCP tools",
		Long: `hamcp is a Model Context Protocol server in front of the Home Assistant
agent add-on. It advertises a fixed catalog of tools (files, entities,
automations, scripts, helpers, HACS, add-ons, dashboards, themes and Git
backups) and forwards every call to the agent over HTTP.

The agent key is read from HA_AGENT_KEY, the agent URL from HA_AGENT_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default: search hamcp.yaml, ~/.config/hamcp/config.yaml)")
	pf.StringVar(&opts.agentURL, "agent-url", "", "Agent base URL (overrides HA_AGENT_URL)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	pf.DurationVar(&opts.timeout, "timeout", 0, "Default per-request timeout (e.g. 90s)")

	cmd.AddCommand(
		newServeCmd(opts),
		newToolsCmd(),
		newCallCmd(opts),
		newHealthCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
