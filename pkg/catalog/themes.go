package catalog

import "github.com/mark3labs/mcp-go/mcp"

var themeName = mcp.WithString("theme_name", mcp.Required(), mcp.Description("Theme name"))

var themeTools = []mcp.Tool{
	readOnly("ha_list_themes",
		"List theme files and the themes they define. Safe operation - only reads data.",
	),
	readOnly("ha_get_theme",
		"Get the variables of one theme. Safe operation - only reads data.",
		themeName,
	),
	write("ha_create_theme",
		"Create a theme file under themes/. Call ha_check_theme_config first and ha_reload_themes afterwards. MODIFIES configuration - requires approval.",
		themeName,
		mcp.WithObject("theme_config", mcp.Required(), mcp.Description(`Theme variables (e.g. {"primary-color": "#1e88e5"})`)),
		changeDescription,
	),
	write("ha_update_theme",
		"Replace the variables of an existing theme, then call ha_reload_themes. MODIFIES configuration - requires approval.",
		themeName,
		mcp.WithObject("theme_config", mcp.Required(), mcp.Description("Complete theme variables")),
		changeDescription,
	),
	destructive("ha_delete_theme",
		"Delete a theme file.",
		themeName,
		changeDescription,
	),
	write("ha_reload_themes",
		"Reload themes so changes take effect without a restart.",
	),
	readOnly("ha_check_theme_config",
		"Check that configuration.yaml includes the themes directory. Safe operation - only checks, does not modify.",
	),
}
