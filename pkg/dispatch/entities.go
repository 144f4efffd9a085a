package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/agent"
)

func (d *Dispatcher) entityHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_list_entities": func(ctx context.Context, args map[string]any) (any, error) {
			var opts agent.EntityListOptions
			if err := decode(args, &opts); err != nil {
				return nil, err
			}
			return d.backend.ListEntities(ctx, opts)
		},
		"ha_get_entity_state": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetEntityState(ctx, str(args, "entity_id"))
		},
		"ha_rename_entity": func(ctx context.Context, args map[string]any) (any, error) {
			var req agent.RenameEntityRequest
			if err := decode(args, &req); err != nil {
				return nil, err
			}
			return d.backend.RenameEntity(ctx, req)
		},
		"ha_call_service": func(ctx context.Context, args map[string]any) (any, error) {
			var call agent.ServiceCall
			if err := decode(args, &call); err != nil {
				return nil, err
			}
			return d.backend.CallService(ctx, call)
		},
	}
}
