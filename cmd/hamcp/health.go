package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check connectivity to the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			h, err := a.checkHealth(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Agent:       %s\n", a.client.BaseURL())
			fmt.Fprintf(out, "Status:      %s\n", h.Status)
			fmt.Fprintf(out, "Version:     %s\n", h.Version)
			fmt.Fprintf(out, "Config path: %s\n", h.ConfigPath)
			fmt.Fprintf(out, "Git enabled: %t\n", h.GitEnabled)
			return nil
		},
	}
}
