package dispatch

import (
	"context"
	"encoding/json"
)

func (d *Dispatcher) addonHandlers() map[string]Handler {
	bySlug := func(fn func(Backend, context.Context, string) (json.RawMessage, error)) Handler {
		return func(ctx context.Context, args map[string]any) (any, error) {
			return fn(d.backend, ctx, str(args, "slug"))
		}
	}

	return map[string]Handler{
		"ha_list_store_addons": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ListStoreAddons(ctx)
		},
		"ha_list_addons": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ListAvailableAddons(ctx)
		},
		"ha_list_installed_addons": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ListInstalledAddons(ctx)
		},
		"ha_addon_info": bySlug(Backend.AddonInfo),
		"ha_addon_logs": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.AddonLogs(ctx, str(args, "slug"), integer(args, "lines"))
		},
		"ha_install_addon":     bySlug(Backend.InstallAddon),
		"ha_uninstall_addon":   bySlug(Backend.UninstallAddon),
		"ha_start_addon":       bySlug(Backend.StartAddon),
		"ha_stop_addon":        bySlug(Backend.StopAddon),
		"ha_restart_addon":     bySlug(Backend.RestartAddon),
		"ha_update_addon":      bySlug(Backend.UpdateAddon),
		"ha_get_addon_options": bySlug(Backend.GetAddonOptions),
		"ha_set_addon_options": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.SetAddonOptions(ctx, str(args, "slug"), object(args, "options"))
		},
		"ha_list_repositories": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ListAddonRepositories(ctx)
		},
		"ha_add_repository": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.AddAddonRepository(ctx, str(args, "repository_url"))
		},
	}
}
