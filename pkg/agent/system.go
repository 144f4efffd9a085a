package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Health queries the agent's health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	raw, err := c.get(ctx, "health", "/api/health", nil)
	if err != nil {
		return nil, err
	}
	var h Health
	if raw != nil {
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("decode health: %w", err)
		}
	}
	return &h, nil
}

func (c *Client) CheckConfig(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "system.check_config", "/api/system/check-config", nil)
}

// ReloadConfig reloads one component, or everything when component is empty.
func (c *Client) ReloadConfig(ctx context.Context, component string) (json.RawMessage, error) {
	if component == "" {
		component = "all"
	}
	return c.do(ctx, request{
		op:     "system.reload",
		method: http.MethodPost,
		path:   "/api/system/reload",
		query:  url.Values{"component": {component}},
	})
}

func (c *Client) Restart(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "system.restart", "/api/system/restart", nil)
}

// GetLogs returns agent log entries, optionally filtered by level.
func (c *Client) GetLogs(ctx context.Context, limit int, level string) (json.RawMessage, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if level != "" {
		q.Set("level", level)
	}
	return c.get(ctx, "system.logs", "/api/logs", q)
}

// GetLogbook returns Home Assistant logbook entries.
func (c *Client) GetLogbook(ctx context.Context, opts LogbookOptions) (json.RawMessage, error) {
	q, err := values(opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "system.logbook", "/api/logbook", q)
}
