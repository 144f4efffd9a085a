package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/commitmsg"
)

func (d *Dispatcher) themeHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_list_themes": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ListThemes(ctx)
		},
		"ha_get_theme": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetTheme(ctx, str(args, "theme_name"))
		},
		"ha_create_theme": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.CreateTheme, args)
			return d.backend.CreateTheme(ctx, str(args, "theme_name"), object(args, "theme_config"), msg)
		},
		"ha_update_theme": func(ctx context.Context, args map[string]any) (any, error) {
			msg := commitmsg.Derive(commitmsg.UpdateTheme, args)
			return d.backend.UpdateTheme(ctx, str(args, "theme_name"), object(args, "theme_config"), msg)
		},
		"ha_delete_theme": func(ctx context.Context, args map[string]any) (any, error) {
			name := str(args, "theme_name")
			raw, err := d.backend.DeleteTheme(ctx, name, commitmsg.Derive(commitmsg.DeleteTheme, args))
			return ack(raw, err, "Theme deleted successfully: "+name)
		},
		"ha_reload_themes": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ReloadThemes(ctx)
		},
		"ha_check_theme_config": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.CheckThemeConfig(ctx)
		},
	}
}
