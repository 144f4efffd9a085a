package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/agent"
)

func (d *Dispatcher) systemHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_check_config": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.CheckConfig(ctx)
		},
		"ha_reload_config": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.ReloadConfig(ctx, str(args, "component"))
		},
		"ha_restart": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.Restart(ctx)
		},
		"ha_get_logs": func(ctx context.Context, args map[string]any) (any, error) {
			limit := integer(args, "limit")
			if limit <= 0 {
				limit = 100
			}
			raw, err := d.backend.GetLogs(ctx, limit, str(args, "level"))
			if err != nil {
				return nil, err
			}
			return renderLogs(raw), nil
		},
		"ha_get_logbook": func(ctx context.Context, args map[string]any) (any, error) {
			var opts agent.LogbookOptions
			if err := decode(args, &opts); err != nil {
				return nil, err
			}
			return d.backend.GetLogbook(ctx, opts)
		},
	}
}
