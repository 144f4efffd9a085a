package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/commitmsg"
)

func (d *Dispatcher) helperHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_list_helpers": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.ListHelpers(ctx, flag(args, "ids_only"))
		},
		"ha_create_helper": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.CreateHelper, args)
			return d.backend.CreateHelper(ctx, str(args, "type"), object(args, "config"), msg)
		},
		"ha_delete_helper": func(ctx context.Context, args map[string]any) (any, error) {
			id := str(args, "entity_id")
			raw, err := d.backend.DeleteHelper(ctx, id, commitmsg.Derive(commitmsg.DeleteHelper, args))
			return ack(raw, err, "Helper deleted successfully: "+id)
		},
	}
}

func (d *Dispatcher) automationHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_list_automations": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.ListAutomations(ctx, flag(args, "ids_only"))
		},
		"ha_get_automation": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetAutomation(ctx, str(args, "automation_id"))
		},
		"ha_create_automation": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.CreateAutomation, args)
			return d.backend.CreateAutomation(ctx, object(args, "config"), msg)
		},
		"ha_update_automation": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.UpdateAutomation, args)
			return d.backend.UpdateAutomation(ctx, str(args, "automation_id"), object(args, "config"), msg)
		},
		"ha_delete_automation": func(ctx context.Context, args map[string]any) (any, error) {
			id := str(args, "automation_id")
			raw, err := d.backend.DeleteAutomation(ctx, id, commitmsg.Derive(commitmsg.DeleteAutomation, args))
			return ack(raw, err, "Automation deleted successfully: "+id)
		},
	}
}

func (d *Dispatcher) scriptHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_list_scripts": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.ListScripts(ctx, flag(args, "ids_only"))
		},
		"ha_get_script": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetScript(ctx, str(args, "script_id"))
		},
		"ha_create_script": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.CreateScript, args)
			return d.backend.CreateScript(ctx, object(args, "config"), msg)
		},
		"ha_update_script": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.UpdateScript, args)
			return d.backend.UpdateScript(ctx, str(args, "script_id"), object(args, "config"), msg)
		},
		"ha_delete_script": func(ctx context.Context, args map[string]any) (any, error) {
			id := str(args, "script_id")
			raw, err := d.backend.DeleteScript(ctx, id, commitmsg.Derive(commitmsg.DeleteScript, args))
			return ack(raw, err, "Script deleted successfully: "+id)
		},
	}
}
