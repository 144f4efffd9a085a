package catalog

import "github.com/mark3labs/mcp-go/mcp"

var addonSlug = mcp.WithString("slug", mcp.Required(), mcp.Description(`Add-on slug (e.g. "core_mosquitto")`))

var addonTools = []mcp.Tool{
	readOnly("ha_list_store_addons",
		"List every add-on offered by the configured add-on stores. Safe operation - only reads data.",
	),
	readOnly("ha_list_addons",
		"List available add-ons with their install state. Safe operation - only reads data.",
	),
	readOnly("ha_list_installed_addons",
		"List installed add-ons with version and run state. Safe operation - only reads data.",
	),
	readOnly("ha_addon_info",
		"Get details of an add-on (version, state, options schema, ports). Safe operation - only reads data.",
		addonSlug,
	),
	readOnly("ha_addon_logs",
		"Get the log output of an add-on. Safe operation - only reads data.",
		addonSlug,
		mcp.WithNumber("lines", mcp.Description("Number of trailing lines (default: 100)")),
	),
	write("ha_install_addon",
		"Install an add-on. Takes up to 10 minutes while the image is pulled. Call ha_addon_info first, then ha_set_addon_options and ha_start_addon. MODIFIES system - requires approval.",
		addonSlug,
	),
	destructive("ha_uninstall_addon",
		"Uninstall an add-on and delete its data.",
		addonSlug,
	),
	write("ha_start_addon",
		"Start an installed add-on. Requires approval.",
		addonSlug,
	),
	write("ha_stop_addon",
		"Stop a running add-on. Requires approval.",
		addonSlug,
	),
	write("ha_restart_addon",
		"Restart an add-on, e.g. after changing its options. Requires approval.",
		addonSlug,
	),
	write("ha_update_addon",
		"Update an add-on to its latest version. Takes up to 10 minutes. MODIFIES system - requires approval.",
		addonSlug,
	),
	readOnly("ha_get_addon_options",
		"Get the current configuration options of an add-on. Safe operation - only reads data.",
		addonSlug,
	),
	write("ha_set_addon_options",
		"Set configuration options of an add-on. Read them first with ha_get_addon_options and call ha_restart_addon afterwards. MODIFIES configuration - requires approval.",
		addonSlug,
		mcp.WithObject("options", mcp.Required(), mcp.Description("Complete options object")),
	),
	readOnly("ha_list_repositories",
		"List add-on store repositories. Safe operation - only reads data.",
	),
	write("ha_add_repository",
		"Add a custom add-on store repository. MODIFIES system - requires approval.",
		mcp.WithString("repository_url", mcp.Required(), mcp.Description("Git URL of the repository")),
	),
}
