package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hamcp"
	"github.com/aretw0/hamcp/internal/config"
	"github.com/aretw0/hamcp/internal/logging"
	"github.com/aretw0/hamcp/pkg/agent"
	"github.com/aretw0/hamcp/pkg/dispatch"
	"github.com/aretw0/hamcp/pkg/observability"
)

// app is the wired process: configuration, logger, metrics and the agent
// client, built once per command invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	client  *agent.Client
}

// load layers command-line flags over config.Load and validates the result.
func (o *globalOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath, os.Getenv)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("agent-url") {
		cfg.Agent.URL = o.agentURL
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("timeout") {
		cfg.Agent.Timeout = o.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	cfg, err := opts.load(cmd)
	if err != nil {
		return nil, err
	}
	// Validate has already checked both values.
	level, _ := logging.ParseLevel(cfg.Log.Level)
	format, _ := logging.ParseFormat(cfg.Log.Format)
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level, format)
	slog.SetDefault(logger)

	metrics := observability.New()
	client, err := agent.New(cfg.Agent.URL, cfg.Agent.Key,
		agent.WithVersion(hamcp.Version),
		agent.WithTimeout(cfg.Agent.Timeout),
		agent.WithLogger(logger),
		agent.WithObserver(metrics),
	)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, metrics: metrics, client: client}, nil
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	return dispatch.New(a.client,
		dispatch.WithLogger(a.logger),
		dispatch.WithObserver(a.metrics),
	)
}

var remediationHints = []string{
	"the agent add-on is installed and running",
	"the agent URL is correct (" + config.EnvAgentURL + ")",
	"the agent key is valid (" + config.EnvAgentKey + ")",
}

// checkHealth confirms the agent is reachable. Failures are logged with
// remediation hints written to w.
func (a *app) checkHealth(ctx context.Context, w io.Writer) (*agent.Health, error) {
	h, err := a.client.Health(ctx)
	if err != nil {
		a.logger.Error("agent health check failed", "url", a.client.BaseURL(), "err", err)
		fmt.Fprintln(w, "Could not reach the Home Assistant agent. Check that:")
		for _, hint := range remediationHints {
			fmt.Fprintf(w, "  - %s\n", hint)
		}
		return nil, fmt.Errorf("agent health check failed: %w", err)
	}
	a.logger.Info("connected to agent",
		"url", a.client.BaseURL(),
		"version", h.Version,
		"config_path", h.ConfigPath,
		"git_enabled", h.GitEnabled,
	)
	return h, nil
}
