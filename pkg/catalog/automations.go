package catalog

import "github.com/mark3labs/mcp-go/mcp"

var helperTypes = []string{
	"input_boolean",
	"input_number",
	"input_text",
	"input_select",
	"input_datetime",
	"input_button",
	"counter",
	"timer",
	"schedule",
}

var helperTools = []mcp.Tool{
	readOnly("ha_list_helpers",
		"List configured helpers (input_boolean, input_number, counter, timer...). Safe operation - only reads data.",
		idsOnly,
	),
	write("ha_create_helper",
		"Create a helper. The agent commits the change to Git automatically. MODIFIES configuration - requires approval.",
		mcp.WithString("type", mcp.Required(), mcp.Enum(helperTypes...), mcp.Description("Helper type")),
		mcp.WithObject("config", mcp.Required(), mcp.Description(`Helper configuration (e.g. {"name": "Guest mode", "icon": "mdi:account"})`)),
		changeDescription,
	),
	destructive("ha_delete_helper",
		"Delete a helper.",
		mcp.WithString("entity_id", mcp.Required(), mcp.Description(`Helper entity id (e.g. "input_boolean.guest_mode")`)),
		changeDescription,
	),
}

var automationTools = []mcp.Tool{
	readOnly("ha_list_automations",
		"List automations. Safe operation - only reads data.",
		idsOnly,
	),
	readOnly("ha_get_automation",
		"Get the full configuration of one automation. Safe operation - only reads data.",
		mcp.WithString("automation_id", mcp.Required(), mcp.Description("Automation id")),
	),
	write("ha_create_automation",
		"Create an automation. Call ha_check_config afterwards, then ha_reload_config with component automations. MODIFIES configuration - requires approval.",
		mcp.WithObject("config", mcp.Required(), mcp.Description("Automation configuration (id, alias, description, trigger, condition, action, mode)")),
		changeDescription,
	),
	write("ha_update_automation",
		"Replace the configuration of an existing automation. Read it first with ha_get_automation. MODIFIES configuration - requires approval.",
		mcp.WithString("automation_id", mcp.Required(), mcp.Description("Automation id")),
		mcp.WithObject("config", mcp.Required(), mcp.Description("Complete new automation configuration")),
		changeDescription,
	),
	destructive("ha_delete_automation",
		"Delete an automation.",
		mcp.WithString("automation_id", mcp.Required(), mcp.Description("Automation id")),
		changeDescription,
	),
}

var scriptTools = []mcp.Tool{
	readOnly("ha_list_scripts",
		"List scripts. Safe operation - only reads data.",
		idsOnly,
	),
	readOnly("ha_get_script",
		"Get the full configuration of one script. Safe operation - only reads data.",
		mcp.WithString("script_id", mcp.Required(), mcp.Description("Script id")),
	),
	write("ha_create_script",
		"Create a script. Call ha_check_config afterwards, then ha_reload_config with component scripts. MODIFIES configuration - requires approval.",
		mcp.WithObject("config", mcp.Required(), mcp.Description("Script configuration (script_id or id, alias, sequence, mode)")),
		changeDescription,
	),
	write("ha_update_script",
		"Replace the configuration of an existing script. Read it first with ha_get_script. MODIFIES configuration - requires approval.",
		mcp.WithString("script_id", mcp.Required(), mcp.Description("Script id")),
		mcp.WithObject("config", mcp.Required(), mcp.Description("Complete new script configuration")),
		changeDescription,
	),
	destructive("ha_delete_script",
		"Delete a script.",
		mcp.WithString("script_id", mcp.Required(), mcp.Description("Script id")),
		changeDescription,
	),
}
