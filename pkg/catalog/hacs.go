package catalog

import "github.com/mark3labs/mcp-go/mcp"

var hacsCategories = []string{
	"integration",
	"plugin",
	"theme",
	"python_script",
	"appdaemon",
	"netdaemon",
	"template",
}

var hacsTools = []mcp.Tool{
	write("ha_install_hacs",
		"Install HACS (Home Assistant Community Store). Call ha_hacs_status first; a restart is required afterwards. MODIFIES configuration - requires approval.",
	),
	destructive("ha_uninstall_hacs",
		"Remove HACS and its configuration.",
	),
	readOnly("ha_hacs_status",
		"Report whether HACS is installed and configured. Call before any other HACS tool. Safe operation - only reads data.",
	),
	readOnly("ha_hacs_list_repositories",
		"List HACS store repositories. Safe operation - only reads data.",
		mcp.WithString("category", mcp.Enum(hacsCategories...), mcp.Description("Category filter (optional)")),
	),
	write("ha_hacs_install_repository",
		"Install a HACS repository. Find it first with ha_hacs_search. MODIFIES configuration - requires approval.",
		mcp.WithString("repository", mcp.Required(), mcp.Description(`Repository "owner/name"`)),
		mcp.WithString("category", mcp.Required(), mcp.Enum(hacsCategories...), mcp.Description("Repository category")),
	),
	readOnly("ha_hacs_search",
		"Search HACS repositories by name, description or author. Safe operation - only reads data.",
		mcp.WithString("query", mcp.Required(), mcp.Description("Search text")),
		mcp.WithString("category", mcp.Enum(hacsCategories...), mcp.Description("Category filter (optional)")),
	),
	write("ha_hacs_update_all",
		"Update every installed HACS repository with a pending update. MODIFIES configuration - requires approval.",
	),
	readOnly("ha_hacs_repository_details",
		"Get details of a HACS repository (versions, installed state, readme). Safe operation - only reads data.",
		mcp.WithString("repository_id", mcp.Required(), mcp.Description(`Repository id or "owner/name"`)),
	),
}
