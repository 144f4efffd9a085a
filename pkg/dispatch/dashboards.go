package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/agent"
	"github.com/aretw0/hamcp/pkg/commitmsg"
)

func (d *Dispatcher) dashboardHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_analyze_entities_for_dashboard": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.AnalyzeDashboard(ctx)
		},
		"ha_preview_dashboard": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.PreviewDashboard(ctx)
		},
		"ha_apply_dashboard": func(ctx context.Context, args map[string]any) (any, error) {
			var req agent.ApplyDashboardRequest
			if err := decode(args, &req); err != nil {
				return nil, err
			}
			req.CommitMessage = commitmsg.Derive(commitmsg.ApplyDashboard, args)
			return d.backend.ApplyDashboard(ctx, req)
		},
		"ha_delete_dashboard": func(ctx context.Context, args map[string]any) (any, error) {
			var opts agent.DeleteDashboardOptions
			if err := decode(args, &opts); err != nil {
				return nil, err
			}
			opts.CommitMessage = commitmsg.Derive(commitmsg.DeleteDashboard, args)
			raw, err := d.backend.DeleteDashboard(ctx, opts)
			return ack(raw, err, "Dashboard deleted successfully: "+opts.Filename)
		},
	}
}
