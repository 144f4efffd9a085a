package catalog

import "github.com/mark3labs/mcp-go/mcp"

var backupTools = []mcp.Tool{
	write("ha_git_commit",
		"Commit pending configuration changes to the Git backup. Needed only while a checkpoint is open or auto-commit is disabled; check ha_git_pending first.",
		mcp.WithString("message", mcp.Description("Commit message describing the changes (optional)")),
	),
	readOnly("ha_git_pending",
		"Show uncommitted configuration changes. Safe operation - only reads data.",
	),
	readOnly("ha_git_history",
		"Get the Git commit history of the configuration. Safe operation - only reads data.",
		mcp.WithNumber("limit", mcp.Description("Number of commits to return (default: 20)")),
	),
	destructive("ha_git_rollback",
		"Restore the configuration to a previous commit. Call ha_git_history first to choose the commit, and ha_reload_config or ha_restart afterwards.",
		mcp.WithString("commit_hash", mcp.Required(), mcp.Description("Commit hash to restore")),
	),
	readOnly("ha_git_diff",
		"Show differences between commits, or uncommitted changes when no commit is given. Safe operation - only reads data.",
		mcp.WithString("commit1", mcp.Description("First commit (optional). Omit to see uncommitted changes")),
		mcp.WithString("commit2", mcp.Description("Second commit (optional). Omit to compare commit1 with HEAD")),
	),
	write("ha_git_checkpoint",
		"Start a checkpoint before a batch of related changes: tags the current state and pauses automatic commits. Always finish with ha_git_checkpoint_end.",
		mcp.WithString("user_request", mcp.Required(), mcp.Description("The user's request that the batch implements")),
	),
	write("ha_git_checkpoint_end",
		"Finish the open checkpoint and resume automatic commits.",
	),
}
