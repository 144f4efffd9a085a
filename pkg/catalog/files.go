package catalog

import "github.com/mark3labs/mcp-go/mcp"

var fileTools = []mcp.Tool{
	readOnly("ha_read_file",
		"Read a file from the Home Assistant configuration directory (configuration.yaml, automations.yaml, scripts.yaml, packages...). Safe operation - only reads data.",
		mcp.WithString("path", mcp.Required(),
			mcp.Description(`Path relative to /config (e.g. "configuration.yaml", "automations.yaml", "scripts/my_script.yaml")`)),
	),
	write("ha_write_file",
		"Write content to a file in the Home Assistant configuration directory. The agent commits the change to Git automatically. Call ha_check_config afterwards and before ha_reload_config. MODIFIES configuration - requires approval.",
		mcp.WithString("path", mcp.Required(), mcp.Description("Path relative to /config")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Full new content of the file")),
		changeDescription,
	),
	readOnly("ha_list_files",
		"List files and directories in the Home Assistant configuration directory. Safe operation - only reads data.",
		mcp.WithString("directory", mcp.Description(`Directory relative to /config (default: "/")`)),
	),
	destructive("ha_delete_file",
		"Delete a file from the Home Assistant configuration directory. The previous content stays recoverable through ha_git_rollback.",
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the file to delete")),
		changeDescription,
	),
}
