package dispatch

import "context"

func (d *Dispatcher) hacsHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_install_hacs": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.HACSInstall(ctx)
		},
		"ha_uninstall_hacs": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.HACSUninstall(ctx)
		},
		"ha_hacs_status": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.HACSStatus(ctx)
		},
		"ha_hacs_list_repositories": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.HACSListRepositories(ctx, str(args, "category"))
		},
		"ha_hacs_install_repository": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.HACSInstallRepository(ctx, str(args, "repository"), str(args, "category"))
		},
		"ha_hacs_search": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.HACSSearch(ctx, str(args, "query"), str(args, "category"))
		},
		"ha_hacs_update_all": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.HACSUpdateAll(ctx)
		},
		"ha_hacs_repository_details": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.HACSRepositoryDetails(ctx, str(args, "repository_id"))
		},
	}
}
