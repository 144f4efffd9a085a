package catalog

// Step is an ordering hint between two tools: Before should be called
// ahead of After. At least one of the two descriptions names the other.
type Step struct {
	Before string
	After  string
	Label  string
}

var steps = []Step{
	{Before: "ha_write_file", After: "ha_check_config"},
	{Before: "ha_create_automation", After: "ha_check_config"},
	{Before: "ha_create_script", After: "ha_check_config"},
	{Before: "ha_check_config", After: "ha_reload_config", Label: "valid"},
	{Before: "ha_check_config", After: "ha_restart", Label: "valid"},
	{Before: "ha_get_automation", After: "ha_update_automation"},
	{Before: "ha_get_script", After: "ha_update_script"},
	{Before: "ha_git_pending", After: "ha_git_commit"},
	{Before: "ha_git_history", After: "ha_git_rollback", Label: "commit"},
	{Before: "ha_git_checkpoint", After: "ha_git_checkpoint_end"},
	{Before: "ha_hacs_status", After: "ha_install_hacs"},
	{Before: "ha_hacs_search", After: "ha_hacs_install_repository", Label: "repository"},
	{Before: "ha_analyze_entities_for_dashboard", After: "ha_apply_dashboard"},
	{Before: "ha_addon_info", After: "ha_install_addon"},
	{Before: "ha_get_addon_options", After: "ha_set_addon_options"},
	{Before: "ha_set_addon_options", After: "ha_restart_addon"},
	{Before: "ha_check_theme_config", After: "ha_create_theme"},
	{Before: "ha_create_theme", After: "ha_reload_themes"},
	{Before: "ha_update_theme", After: "ha_reload_themes"},
}

// Steps returns the ordering hints the descriptions carry, as a graph an
// agent or a human can follow.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}
