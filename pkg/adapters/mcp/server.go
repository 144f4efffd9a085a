package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/hamcp/pkg/catalog"
	"github.com/aretw0/hamcp/pkg/dispatch"
)

// ServerName is advertised in the MCP initialize response.
const ServerName = "hamcp"

// Dispatcher runs tool calls. *dispatch.Dispatcher implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult
}

// Server exposes the tool catalog over MCP.
type Server struct {
	dispatcher Dispatcher
	mcpServer  *server.MCPServer
	metrics    http.Handler
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics mounts h at /metrics on the network transports.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a new MCP Server advertising every catalog tool.
func NewServer(d Dispatcher, version string, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcpServer = server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()
	return s
}

// MCPServer exposes the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

// registerTools adds every catalog tool. Names outside the catalog never
// reach handleCall: mcp-go answers them with a JSON-RPC "tool not found"
// error, so the "Unknown tool" result text only comes from Dispatch itself.
func (s *Server) registerTools() {
	for _, tool := range catalog.Tools() {
		s.mcpServer.AddTool(tool, s.handleCall)
	}
}

// handleCall rejects calls without an arguments object before dispatch.
func (s *Server) handleCall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if req.Params.Arguments == nil {
		return dispatch.ErrorResult(dispatch.ErrNoArguments), nil
	}
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return dispatch.ErrorResult(errors.New("arguments must be an object")), nil
	}
	return s.dispatcher.Dispatch(ctx, req.Params.Name, args), nil
}

// ServeStdio starts the server on Stdin/Stdout. Diagnostics go to the
// configured logger, never to stdout.
func (s *Server) ServeStdio() error {
	errLogger := slog.NewLogLogger(s.logger.Handler(), slog.LevelError)
	return server.ServeStdio(s.mcpServer, server.WithErrorLogger(errLogger))
}

// Router returns the HTTP routes of the network transports: SSE at /sse and
// /message, streamable HTTP at /mcp, plus /healthz and /metrics.
func (s *Server) Router(baseURL string) http.Handler {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))
	streamable := server.NewStreamableHTTPServer(s.mcpServer)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)

	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())
	r.Handle("/mcp", streamable)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"tools":  catalog.Len(),
		})
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return r
}

// ServeHTTP listens on port until ctx is cancelled, then shuts down
// gracefully. An empty baseURL defaults to http://localhost:<port>.
func (s *Server) ServeHTTP(ctx context.Context, port int, baseURL string) error {
	addr := fmt.Sprintf(":%d", port)
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", port)
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(baseURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening", "address", addr, "sse", baseURL+"/sse", "streamable", baseURL+"/mcp")
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id, Mcp-Protocol-Version")
		w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
