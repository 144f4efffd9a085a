package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/hamcp"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hamcp",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hamcp version %s\n", hamcp.Version)
		},
	}
}
