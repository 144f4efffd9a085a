package catalog

import "github.com/mark3labs/mcp-go/mcp"

var entityTools = []mcp.Tool{
	readOnly("ha_list_entities",
		"List entity states, optionally filtered. Large installations should filter by domain or area, page through results, or request ids_only / summary_only. Safe operation - only reads data.",
		mcp.WithString("domain", mcp.Description(`Domain filter (e.g. "light", "climate", "sensor")`)),
		mcp.WithString("search", mcp.Description("Case-insensitive substring matched against entity id and friendly name")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("page_size", mcp.Description("Entities per page")),
		mcp.WithBoolean("ids_only", mcp.Description("Return only entity ids")),
		mcp.WithBoolean("summary_only", mcp.Description("Return counts per domain instead of entities")),
		mcp.WithString("area_id", mcp.Description("Only entities assigned to this area id")),
		mcp.WithString("area_name", mcp.Description("Only entities assigned to the area with this name")),
		mcp.WithBoolean("no_area", mcp.Description("Only entities without an area")),
	),
	readOnly("ha_get_entity_state",
		"Get the current state and attributes of one entity. Safe operation - only reads data.",
		mcp.WithString("entity_id", mcp.Required(), mcp.Description(`Entity id (e.g. "light.living_room")`)),
	),
	write("ha_rename_entity",
		"Rename an entity id and optionally its friendly name. History, automations and scripts referencing the old id are updated by the agent. MODIFIES configuration - requires approval.",
		mcp.WithString("old_entity_id", mcp.Required(), mcp.Description("Current entity id")),
		mcp.WithString("new_entity_id", mcp.Required(), mcp.Description("New entity id, same domain")),
		mcp.WithString("new_name", mcp.Description("New friendly name (optional)")),
	),
}
