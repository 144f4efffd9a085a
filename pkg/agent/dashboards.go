package agent

import (
	"context"
	"encoding/json"
)

// AnalyzeDashboard returns entities grouped by domain for dashboard
// generation.
func (c *Client) AnalyzeDashboard(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "dashboards.analyze", "/api/lovelace/analyze", nil)
}

// PreviewDashboard returns the current Lovelace configuration.
func (c *Client) PreviewDashboard(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "dashboards.preview", "/api/lovelace/preview", nil)
}

// ApplyDashboard writes a dashboard file and optionally registers it.
func (c *Client) ApplyDashboard(ctx context.Context, req ApplyDashboardRequest) (json.RawMessage, error) {
	return c.post(ctx, "dashboards.apply", "/api/lovelace/apply", req)
}

// DeleteDashboard removes a dashboard file and optionally its registration.
func (c *Client) DeleteDashboard(ctx context.Context, opts DeleteDashboardOptions) (json.RawMessage, error) {
	q, err := values(opts)
	if err != nil {
		return nil, err
	}
	return c.del(ctx, "dashboards.delete", "/api/lovelace/delete/"+segment(opts.Filename), q)
}
