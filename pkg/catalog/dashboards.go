package catalog

import "github.com/mark3labs/mcp-go/mcp"

var dashboardTools = []mcp.Tool{
	readOnly("ha_analyze_entities_for_dashboard",
		"Get the entity list grouped by domain with attributes, as input for generating a dashboard. Safe operation - only reads data.",
	),
	readOnly("ha_preview_dashboard",
		"Preview the current Lovelace dashboard configuration. Safe operation - only reads data.",
	),
	write("ha_apply_dashboard",
		"Write a generated dashboard, register it in configuration.yaml and restart Home Assistant. Call ha_analyze_entities_for_dashboard first. Creates an automatic Git backup. MODIFIES configuration - requires approval!",
		mcp.WithObject("dashboard_config", mcp.Required(), mcp.Description("Lovelace dashboard configuration (title, views)")),
		mcp.WithBoolean("create_backup", mcp.Description("Create a Git backup before applying (default: true)")),
		mcp.WithString("filename", mcp.Description("Dashboard file name (default: ai-dashboard.yaml)")),
		mcp.WithBoolean("register_dashboard", mcp.Description("Register the dashboard in configuration.yaml (default: true)")),
		changeDescription,
	),
	destructive("ha_delete_dashboard",
		"Delete a dashboard file, remove it from configuration.yaml and restart Home Assistant. Creates an automatic Git backup.",
		mcp.WithString("filename", mcp.Required(), mcp.Description("Dashboard file name (e.g. ai-dashboard.yaml)")),
		mcp.WithBoolean("remove_from_config", mcp.Description("Remove the registration from configuration.yaml (default: true)")),
		mcp.WithBoolean("create_backup", mcp.Description("Create a Git backup before deleting (default: true)")),
		changeDescription,
	),
}
