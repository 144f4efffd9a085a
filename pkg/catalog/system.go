package catalog

import "github.com/mark3labs/mcp-go/mcp"

var systemTools = []mcp.Tool{
	readOnly("ha_check_config",
		"Validate the Home Assistant configuration. ALWAYS call this before ha_reload_config or ha_restart. Safe operation - only checks, does not modify.",
	),
	write("ha_reload_config",
		"Reload configuration without a full restart. Call ha_check_config first. APPLIES changes - requires approval!",
		mcp.WithString("component",
			mcp.Enum("automations", "scripts", "templates", "core", "all"),
			mcp.Description(`Component to reload (default: "all")`)),
	),
	destructive("ha_restart",
		"Fully restart Home Assistant Core. Needed for new integrations and dashboards. HA is unavailable for 30-60 seconds. Call ha_check_config first.",
	),
	readOnly("ha_get_logs",
		"Get recent agent logs to troubleshoot failed operations. Safe operation - only reads data.",
		mcp.WithNumber("limit", mcp.Description("Number of entries (default: 100)")),
		mcp.WithString("level", mcp.Enum("DEBUG", "INFO", "WARNING", "ERROR"), mcp.Description("Minimum level (optional)")),
	),
	readOnly("ha_get_logbook",
		"Get Home Assistant logbook entries (state changes, automation runs) for a time window. Safe operation - only reads data.",
		mcp.WithString("start_time", mcp.Description("ISO-8601 start (optional)")),
		mcp.WithString("end_time", mcp.Description("ISO-8601 end (optional)")),
		mcp.WithNumber("hours", mcp.Description("Window length in hours when start_time is omitted (default: 24)")),
		mcp.WithString("entity_id", mcp.Description("Only entries for this entity")),
		mcp.WithString("domain", mcp.Description("Only entries for this domain")),
		mcp.WithString("event_type", mcp.Description(`Only this event type (e.g. "automation_triggered")`)),
		mcp.WithString("search", mcp.Description("Substring matched against name and message")),
		mcp.WithNumber("limit", mcp.Description("Maximum entries to return")),
	),
}

var serviceTools = []mcp.Tool{
	write("ha_call_service",
		`Call a Home Assistant service (e.g. light.turn_on). Changes device state immediately - requires approval.`,
		mcp.WithString("domain", mcp.Required(), mcp.Description(`Service domain (e.g. "light")`)),
		mcp.WithString("service", mcp.Required(), mcp.Description(`Service name (e.g. "turn_on")`)),
		mcp.WithObject("service_data", mcp.Description("Service data (optional)")),
		mcp.WithObject("target", mcp.Description(`Target (e.g. {"entity_id": "light.kitchen"})`)),
	),
}
