// Package dispatch maps catalog tool names to calls on the agent client.
//
// Every handler runs behind a single guard that converts errors and panics
// into MCP error results, so Dispatch never fails and never panics. Mutating
// handlers derive a commit message with commitmsg before calling out.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/hamcp/internal/logging"
	"github.com/aretw0/hamcp/pkg/catalog"
)

// ErrNoArguments is returned when a call carries no arguments object.
var ErrNoArguments = errors.New("No arguments provided")

// UnknownToolError names a tool without a handler.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return "Unknown tool: " + e.Name }

func (e *UnknownToolError) Unwrap() error { return catalog.ErrUnknownTool }

// Handler executes one tool. The returned value is rendered by Format.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Observer receives one notification per dispatched call.
type Observer interface {
	ObserveToolCall(tool string, failed bool, elapsed time.Duration)
}

// Dispatcher routes tool calls to handlers. The handler table is built once
// in New and never modified, so a Dispatcher is safe for concurrent use.
type Dispatcher struct {
	backend  Backend
	handlers map[string]Handler
	logger   *slog.Logger
	observer Observer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-call diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithObserver registers a call observer (metrics).
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// New builds a dispatcher with a handler for every catalog tool.
func New(backend Backend, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		backend:  backend,
		handlers: make(map[string]Handler),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	groups := []map[string]Handler{
		d.fileHandlers(),
		d.entityHandlers(),
		d.registryHandlers(),
		d.helperHandlers(),
		d.automationHandlers(),
		d.scriptHandlers(),
		d.backupHandlers(),
		d.systemHandlers(),
		d.hacsHandlers(),
		d.addonHandlers(),
		d.dashboardHandlers(),
		d.themeHandlers(),
	}
	for _, g := range groups {
		for name, h := range g {
			d.handlers[name] = h
		}
	}
	return d
}

// Has reports whether name has a handler.
func (d *Dispatcher) Has(name string) bool {
	_, ok := d.handlers[name]
	return ok
}

// Names returns the handled tool names, sorted.
func (d *Dispatcher) Names() []string {
	out := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dispatch runs the named tool and always returns a result with exactly one
// text content item. IsError is set iff the call failed.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	start := time.Now()
	logger := d.logger.With("call_id", uuid.NewString(), "tool", name)
	logger.Log(ctx, logging.LevelTrace, "tool call arguments", "args", args)

	text, err := d.run(ctx, name, args)
	elapsed := time.Since(start)
	if d.observer != nil {
		d.observer.ObserveToolCall(name, err != nil, elapsed)
	}
	if err != nil {
		logger.Debug("tool call failed", "elapsed", elapsed, "err", err)
		return ErrorResult(err)
	}
	logger.Debug("tool call", "elapsed", elapsed, "bytes", len(text))
	return mcp.NewToolResultText(text)
}

func (d *Dispatcher) run(ctx context.Context, name string, args map[string]any) (string, error) {
	h, ok := d.handlers[name]
	if !ok {
		return "", &UnknownToolError{Name: name}
	}
	if args == nil {
		return "", ErrNoArguments
	}
	if err := catalog.Validate(name, args); err != nil {
		return "", err
	}
	return guard(h)(ctx, dropNulls(args))
}

// dropNulls returns a copy of args without null values. Validation has
// already rejected nulls on required arguments.
func dropNulls(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// ErrorResult wraps err in the uniform error envelope.
func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

// guard runs h and renders its result. Errors and panics, including those
// raised while formatting, come back as errors.
func guard(h Handler) func(context.Context, map[string]any) (string, error) {
	return func(ctx context.Context, args map[string]any) (text string, err error) {
		defer func() {
			if r := recover(); r != nil {
				text, err = "", fmt.Errorf("internal error: %v", r)
			}
		}()
		res, err := h(ctx, args)
		if err != nil {
			return "", err
		}
		return Format(res), nil
	}
}
