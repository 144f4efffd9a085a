package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the fake agent.
type recorded struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   map[string]any
}

type fakeAgent struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	response string
	delay    time.Duration
}

func (f *fakeAgent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	rec := recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &rec.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-r.Context().Done():
			return
		}
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, f.response)
}

func (f *fakeAgent) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the agent")
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, f *fakeAgent, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, "secret-token", append([]Option{WithVersion("1.2.3\n")}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", "token")
	assert.Error(t, err)

	_, err = New("http://agent:8099", "")
	assert.Error(t, err)

	_, err = New("ftp://agent", "token")
	assert.Error(t, err)

	c, err := New("http://agent:8099/", "token")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, "http://agent:8099", c.BaseURL())
}

func TestClient_Headers(t *testing.T) {
	f := &fakeAgent{response: `{"status":"healthy","version":"2.9.0","config_path":"/config","git_enabled":true}`}
	c := newTestClient(t, f)

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.9.0", h.Version)
	assert.Equal(t, "/config", h.ConfigPath)
	assert.True(t, h.GitEnabled)

	req := f.last(t)
	assert.Equal(t, "/api/health", req.Path)
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, "hamcp/1.2.3", req.Header.Get(VersionHeader))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestClient_ReadFile(t *testing.T) {
	f := &fakeAgent{response: `{"success":true,"content":"homeassistant:\n"}`}
	c := newTestClient(t, f)

	content, err := c.ReadFile(context.Background(), "configuration.yaml")
	require.NoError(t, err)
	assert.Equal(t, "homeassistant:\n", content)

	req := f.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/files/read", req.Path)
	assert.Equal(t, []string{"configuration.yaml"}, req.Query["path"])
}

func TestClient_WriteFile_CommitMessage(t *testing.T) {
	f := &fakeAgent{response: `{"success":true}`}
	c := newTestClient(t, f)

	require.NoError(t, c.WriteFile(context.Background(), "automations.yaml", "[]", "Automations: tidy"))
	req := f.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "automations.yaml", req.Body["path"])
	assert.Equal(t, "[]", req.Body["content"])
	assert.Equal(t, "Automations: tidy", req.Body["commit_message"])

	require.NoError(t, c.WriteFile(context.Background(), "a.yaml", "x", ""))
	req = f.last(t)
	_, present := req.Body["commit_message"]
	assert.False(t, present, "empty commit message must not be sent")
}

func TestClient_DeleteCommitMessageInQuery(t *testing.T) {
	f := &fakeAgent{response: `{"success":true}`}
	c := newTestClient(t, f)

	_, err := c.DeleteScript(context.Background(), "morning_routine", "Remove script: morning_routine")
	require.NoError(t, err)
	req := f.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/scripts/delete/morning_routine", req.Path)
	assert.Equal(t, []string{"Remove script: morning_routine"}, req.Query["commit_message"])

	_, err = c.DeleteHelper(context.Background(), "input_boolean.guest", "")
	require.NoError(t, err)
	req = f.last(t)
	assert.NotContains(t, req.Query, "commit_message")
}

func TestClient_CreateAutomation_DoesNotMutateConfig(t *testing.T) {
	f := &fakeAgent{response: `{"success":true}`}
	c := newTestClient(t, f)

	config := map[string]any{"alias": "Motion"}
	_, err := c.CreateAutomation(context.Background(), config, "Add automation: Motion")
	require.NoError(t, err)

	req := f.last(t)
	assert.Equal(t, "Motion", req.Body["alias"])
	assert.Equal(t, "Add automation: Motion", req.Body["commit_message"])
	assert.NotContains(t, config, "commit_message")
}

func TestClient_ListEntities_QueryOmission(t *testing.T) {
	f := &fakeAgent{response: `{"count":1,"entities":[{"entity_id":"light.kitchen"}]}`}
	c := newTestClient(t, f)

	raw, err := c.ListEntities(context.Background(), EntityListOptions{Domain: "light"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"entity_id":"light.kitchen"}]`, string(raw))

	req := f.last(t)
	assert.Equal(t, map[string][]string{"domain": {"light"}}, req.Query)

	no := false
	_, err = c.ListEntities(context.Background(), EntityListOptions{SummaryOnly: &no, PageSize: 50})
	require.NoError(t, err)
	req = f.last(t)
	assert.Equal(t, []string{"false"}, req.Query["summary_only"])
	assert.Equal(t, []string{"50"}, req.Query["page_size"])
	assert.NotContains(t, req.Query, "domain")
	assert.NotContains(t, req.Query, "ids_only")
}

func TestClient_ListEntities_ProjectionNotNarrowed(t *testing.T) {
	f := &fakeAgent{response: `{"entity_ids":["light.a"]}`}
	c := newTestClient(t, f)

	yes := true
	raw, err := c.ListEntities(context.Background(), EntityListOptions{IDsOnly: &yes})
	require.NoError(t, err)
	assert.JSONEq(t, `{"entity_ids":["light.a"]}`, string(raw))
}

func TestClient_GitHistory_Narrowed(t *testing.T) {
	f := &fakeAgent{response: `{"commits":[{"hash":"abc"}]}`}
	c := newTestClient(t, f)

	raw, err := c.GitHistory(context.Background(), 5)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"hash":"abc"}]`, string(raw))
	assert.Equal(t, []string{"5"}, f.last(t).Query["limit"])

	_, err = c.GitHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.NotContains(t, f.last(t).Query, "limit")
}

func TestClient_ReloadDefaultsToAll(t *testing.T) {
	f := &fakeAgent{response: `{"success":true}`}
	c := newTestClient(t, f)

	_, err := c.ReloadConfig(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"all"}, f.last(t).Query["component"])
}

func TestClient_APIError_PrefersDetail(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     string
	}{
		{"detail string", http.StatusNotFound, `{"detail":"File not found: x.yaml"}`, "File not found: x.yaml"},
		{"structured detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["path"]}]}`, `[{"loc":["path"]}]`},
		{"error field", http.StatusBadRequest, `{"error":"bad slug"}`, "bad slug"},
		{"no payload", http.StatusBadGateway, `<html>oops</html>`, "request failed with status code 502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAgent{status: tt.status, response: tt.response}
			c := newTestClient(t, f)

			_, err := c.GetEntityState(context.Background(), "light.x")
			require.Error(t, err)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	f := &fakeAgent{response: `{}`, delay: 500 * time.Millisecond}
	c := newTestClient(t, f, WithTimeout(50*time.Millisecond))

	_, err := c.HACSStatus(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)
	assert.Contains(t, err.Error(), "50ms")
}

func TestClient_AddonInstallAndUpdateUseLongTimeout(t *testing.T) {
	f := &fakeAgent{response: `{"result":"ok"}`, delay: 150 * time.Millisecond}
	c := newTestClient(t, f, WithTimeout(50*time.Millisecond))
	ctx := context.Background()

	_, err := c.InstallAddon(ctx, "core_mosquitto")
	require.NoError(t, err)
	_, err = c.UpdateAddon(ctx, "core_mosquitto")
	require.NoError(t, err)

	_, err = c.StartAddon(ctx, "core_mosquitto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, "token")
	require.NoError(t, err)
	_, err = c.GitPending(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, err.Error(), "/api/backup/pending")
}

type countingObserver struct {
	mu  sync.Mutex
	ops []string
}

func (o *countingObserver) ObserveRequest(op string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, op)
}

func TestClient_AddonPathsAndObserver(t *testing.T) {
	f := &fakeAgent{response: `{"result":"ok"}`}
	obs := &countingObserver{}
	c := newTestClient(t, f, WithObserver(obs))

	_, err := c.InstallAddon(context.Background(), "core_mosquitto")
	require.NoError(t, err)
	assert.Equal(t, "/api/addons/core_mosquitto/install", f.last(t).Path)

	_, err = c.AddonLogs(context.Background(), "core_mosquitto", 200)
	require.NoError(t, err)
	assert.Equal(t, []string{"200"}, f.last(t).Query["lines"])

	assert.Equal(t, []string{"addons.install", "addons.logs"}, obs.ops)
}

func TestClient_DeleteDashboard(t *testing.T) {
	f := &fakeAgent{response: `{"success":true}`}
	c := newTestClient(t, f)

	keep := false
	_, err := c.DeleteDashboard(context.Background(), DeleteDashboardOptions{
		Filename:         "ai-dashboard.yaml",
		RemoveFromConfig: &keep,
		CommitMessage:    "Remove dashboard: ai-dashboard.yaml",
	})
	require.NoError(t, err)
	req := f.last(t)
	assert.Equal(t, "/api/lovelace/delete/ai-dashboard.yaml", req.Path)
	assert.Equal(t, []string{"false"}, req.Query["remove_from_config"])
	assert.NotContains(t, req.Query, "create_backup")
	assert.NotContains(t, req.Query, "filename")
	assert.Equal(t, []string{"Remove dashboard: ai-dashboard.yaml"}, req.Query["commit_message"])
}

func TestPluck(t *testing.T) {
	assert.JSONEq(t, `[1]`, string(pluck(json.RawMessage(`{"files":[1]}`), "files")))
	assert.Nil(t, pluck(json.RawMessage(`{"other":1}`), "files"))
	assert.JSONEq(t, `[1,2]`, string(pluck(json.RawMessage(`[1,2]`), "files")))
	assert.Nil(t, pluck(nil, "files"))
}
