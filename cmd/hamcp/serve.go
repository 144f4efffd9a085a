package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/hamcp"
	"github.com/aretw0/hamcp/internal/presentation/tui"
	"github.com/aretw0/hamcp/pkg/adapters/mcp"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var (
		transport string
		port      int
		baseURL   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Checks that the agent is reachable, then serves the tool catalog over MCP.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse, http: Listens on --port and serves SSE (/sse, /message), streamable
  HTTP (/mcp), /healthz and Prometheus /metrics from one router.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTransport(transport); err != nil {
				return err
			}
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if cmd.Flags().Changed("base-url") {
				a.cfg.Server.BaseURL = baseURL
			}

			if _, err := a.checkHealth(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			version := hamcp.Version
			srv := mcp.NewServer(a.dispatcher(), version,
				mcp.WithLogger(a.logger),
				mcp.WithMetrics(a.metrics.Handler()),
			)

			switch transport {
			case "stdio":
				a.logger.Info("Starting hamcp MCP Server (Stdio)")
				return srv.ServeStdio()
			case "sse", "http":
				tui.PrintBanner(cmd.ErrOrStderr(), version)
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				if err := srv.ServeHTTP(ctx, a.cfg.Server.Port, a.cfg.Server.BaseURL); err != nil {
					return err
				}
				a.logger.Info("MCP Server stopped gracefully")
				return nil
			default:
				return checkTransport(transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport protocol: stdio, sse or http")
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (sse/http only)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Public base URL for SSE message endpoints (default http://localhost:<port>)")
	return cmd
}

func checkTransport(transport string) error {
	switch transport {
	case "stdio", "sse", "http":
		return nil
	}
	return fmt.Errorf("unknown transport: %s (supported: stdio, sse, http)", transport)
}
