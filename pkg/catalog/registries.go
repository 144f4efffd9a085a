package catalog

import "github.com/mark3labs/mcp-go/mcp"

// Registries hold metadata (names, areas, aliases) distinct from live state.
var registryTools = []mcp.Tool{
	readOnly("ha_get_entity_registry_list",
		"List entity registry entries (name, area, device, platform, disabled state). Safe operation - only reads data.",
		mcp.WithString("area_id", mcp.Description("Only entries in this area")),
		mcp.WithString("device_id", mcp.Description("Only entries of this device")),
		mcp.WithString("domain", mcp.Description("Only entries of this domain")),
	),
	readOnly("ha_get_entity_registry_entry",
		"Get the registry entry of one entity. Safe operation - only reads data.",
		mcp.WithString("entity_id", mcp.Required(), mcp.Description("Entity id")),
	),
	write("ha_update_entity_registry",
		"Update registry metadata of an entity (name, icon, area, aliases, disabled or hidden state). MODIFIES configuration - requires approval.",
		mcp.WithString("entity_id", mcp.Required(), mcp.Description("Entity id")),
		mcp.WithString("name", mcp.Description("Display name override")),
		mcp.WithString("icon", mcp.Description(`Icon (e.g. "mdi:lamp")`)),
		mcp.WithString("area_id", mcp.Description("Area id to assign")),
		mcp.WithString("disabled_by", mcp.Description(`"user" to disable, empty string to enable`)),
		mcp.WithString("hidden_by", mcp.Description(`"user" to hide, empty string to unhide`)),
		mcp.WithArray("aliases", mcp.WithStringItems(), mcp.Description("Voice assistant aliases")),
		mcp.WithString("new_entity_id", mcp.Description("New entity id (prefer ha_rename_entity)")),
	),
	destructive("ha_remove_entity_registry_entry",
		"Remove an entity from the entity registry. Only orphaned entities should be removed.",
		mcp.WithString("entity_id", mcp.Required(), mcp.Description("Entity id")),
	),
	readOnly("ha_get_area_registry_list",
		"List all areas. Safe operation - only reads data.",
	),
	readOnly("ha_get_area_registry_entry",
		"Get one area. Safe operation - only reads data.",
		mcp.WithString("area_id", mcp.Required(), mcp.Description("Area id")),
	),
	write("ha_create_area",
		"Create an area. MODIFIES configuration - requires approval.",
		mcp.WithString("name", mcp.Required(), mcp.Description("Area name")),
		mcp.WithArray("aliases", mcp.WithStringItems(), mcp.Description("Alternative names")),
		mcp.WithString("icon", mcp.Description("Icon")),
		mcp.WithString("picture", mcp.Description("Picture URL")),
	),
	write("ha_update_area",
		"Update an area. MODIFIES configuration - requires approval.",
		mcp.WithString("area_id", mcp.Required(), mcp.Description("Area id")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithArray("aliases", mcp.WithStringItems(), mcp.Description("Alternative names")),
		mcp.WithString("icon", mcp.Description("Icon")),
		mcp.WithString("picture", mcp.Description("Picture URL")),
	),
	destructive("ha_delete_area",
		"Delete an area. Entities and devices in it become unassigned.",
		mcp.WithString("area_id", mcp.Required(), mcp.Description("Area id")),
	),
	readOnly("ha_get_device_registry_list",
		"List devices, optionally by area. Safe operation - only reads data.",
		mcp.WithString("area_id", mcp.Description("Only devices in this area")),
	),
	readOnly("ha_get_device_registry_entry",
		"Get one device. Safe operation - only reads data.",
		mcp.WithString("device_id", mcp.Required(), mcp.Description("Device id")),
	),
	write("ha_update_device_registry",
		"Update a device (user name, area, disabled state). MODIFIES configuration - requires approval.",
		mcp.WithString("device_id", mcp.Required(), mcp.Description("Device id")),
		mcp.WithString("name_by_user", mcp.Description("Display name")),
		mcp.WithString("area_id", mcp.Description("Area id to assign")),
		mcp.WithString("disabled_by", mcp.Description(`"user" to disable, empty string to enable`)),
	),
	destructive("ha_remove_device_registry_entry",
		"Remove a device from the device registry.",
		mcp.WithString("device_id", mcp.Required(), mcp.Description("Device id")),
	),
}
