package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hamcp/pkg/catalog"
)

// stubDispatcher records calls and echoes the tool name.
type stubDispatcher struct {
	calls []string
	args  []map[string]any
}

func (d *stubDispatcher) Dispatch(_ context.Context, name string, args map[string]any) *mcp.CallToolResult {
	d.calls = append(d.calls, name)
	d.args = append(d.args, args)
	return mcp.NewToolResultText("called " + name)
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func callRequest(name string, args any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestHandleCall_NoArguments(t *testing.T) {
	d := &stubDispatcher{}
	s := NewServer(d, "test")

	res, err := s.handleCall(context.Background(), callRequest("ha_git_pending", nil))

	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: No arguments provided", textOf(t, res))
	assert.Empty(t, d.calls, "dispatcher must not be reached")
}

func TestHandleCall_NonObjectArguments(t *testing.T) {
	d := &stubDispatcher{}
	s := NewServer(d, "test")

	res, err := s.handleCall(context.Background(), callRequest("ha_git_pending", []any{"x"}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, d.calls)
}

func TestHandleCall_Dispatches(t *testing.T) {
	d := &stubDispatcher{}
	s := NewServer(d, "test")

	res, err := s.handleCall(context.Background(), callRequest("ha_read_file", map[string]any{"path": "a.yaml"}))

	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "called ha_read_file", textOf(t, res))
	assert.Equal(t, []string{"ha_read_file"}, d.calls)
	assert.Equal(t, "a.yaml", d.args[0]["path"])
}

func TestServer_ListsCatalog(t *testing.T) {
	s := NewServer(&stubDispatcher{}, "test")

	msg := json.RawMessage(`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`)
	resp := s.MCPServer().HandleMessage(context.Background(), msg)
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	names := make([]string, 0, len(decoded.Result.Tools))
	for _, tool := range decoded.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, catalog.Names(), names)
}

func TestServer_UnknownToolIsProtocolError(t *testing.T) {
	d := &stubDispatcher{}
	s := NewServer(d, "test")

	msg := json.RawMessage(`{"jsonrpc": "2.0", "id": 2, "method": "tools/call", "params": {"name": "ha_bogus", "arguments": {}}}`)
	data, err := json.Marshal(s.MCPServer().HandleMessage(context.Background(), msg))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "error")
	assert.NotContains(t, decoded, "result")
	assert.Empty(t, d.calls)
}

func TestRouter(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "# metrics")
	})
	s := NewServer(&stubDispatcher{}, "test", WithMetrics(metrics))
	srv := httptest.NewServer(s.Router("http://example.test"))
	defer srv.Close()

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, float64(catalog.Len()), body["tools"])
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "# metrics", string(data))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/mcp", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_NoMetricsByDefault(t *testing.T) {
	s := NewServer(&stubDispatcher{}, "test")
	rec := httptest.NewRecorder()
	s.Router("http://example.test").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
