// Package commitmsg derives the audit message attached to every mutating
// call forwarded to the agent. Derivation is pure: the same operation and
// arguments always produce the same message.
package commitmsg

import (
	"fmt"
	"strings"
)

// Operation identifies a kind of mutation.
type Operation string

const (
	WriteFile        Operation = "write_file"
	DeleteFile       Operation = "delete_file"
	CreateHelper     Operation = "create_helper"
	DeleteHelper     Operation = "delete_helper"
	CreateAutomation Operation = "create_automation"
	UpdateAutomation Operation = "update_automation"
	DeleteAutomation Operation = "delete_automation"
	CreateScript     Operation = "create_script"
	UpdateScript     Operation = "update_script"
	DeleteScript     Operation = "delete_script"
	CreateTheme      Operation = "create_theme"
	UpdateTheme      Operation = "update_theme"
	DeleteTheme      Operation = "delete_theme"
	ApplyDashboard   Operation = "apply_dashboard"
	DeleteDashboard  Operation = "delete_dashboard"
)

// DefaultDashboardFile is the file the agent writes when none is named.
const DefaultDashboardFile = "ai-dashboard.yaml"

// labels are the fixed prefixes for every operation except file writes,
// which are classified by path instead.
var labels = map[Operation]string{
	DeleteFile:       "Remove file: ",
	CreateHelper:     "Add helper: ",
	DeleteHelper:     "Remove helper: ",
	CreateAutomation: "Add automation: ",
	UpdateAutomation: "Update automation: ",
	DeleteAutomation: "Remove automation: ",
	CreateScript:     "Add script: ",
	UpdateScript:     "Update script: ",
	DeleteScript:     "Remove script: ",
	CreateTheme:      "Add theme: ",
	UpdateTheme:      "Update theme: ",
	DeleteTheme:      "Remove theme: ",
	ApplyDashboard:   "Apply dashboard: ",
	DeleteDashboard:  "Remove dashboard: ",
}

// Derive returns the commit message for op. A non-empty "description"
// argument always wins and is prefixed with a category label; otherwise a
// message is synthesized from the best identifying argument.
func Derive(op Operation, args map[string]any) string {
	if desc := strings.TrimSpace(str(args, "description")); desc != "" {
		return prefix(op, args) + desc
	}
	return synthesize(op, args)
}

func prefix(op Operation, args map[string]any) string {
	if op == WriteFile {
		if c := ClassifyFile(str(args, "path")); c != "" {
			return c + ": "
		}
		return ""
	}
	if l, ok := labels[op]; ok {
		return l
	}
	return "Update configuration: "
}

func synthesize(op Operation, args map[string]any) string {
	config := obj(args, "config")

	switch op {
	case WriteFile:
		path := str(args, "path")
		if c := ClassifyFile(path); c != "" {
			return c + ": Update " + path
		}
		return "Update file: " + path
	case DeleteFile:
		return labels[op] + str(args, "path")

	case CreateHelper:
		name := first(str(config, "name"), str(args, "name"), str(config, "entity_id"), str(args, "entity_id"), "helper")
		return fmt.Sprintf("%s%s - %s", labels[op], str(args, "type"), name)
	case DeleteHelper:
		return labels[op] + str(args, "entity_id")

	case CreateAutomation:
		return labels[op] + first(str(config, "alias"), str(config, "id"), "automation")
	case UpdateAutomation:
		return labels[op] + first(str(config, "alias"), str(args, "automation_id"), str(config, "id"), "automation")
	case DeleteAutomation:
		return labels[op] + str(args, "automation_id")

	case CreateScript:
		return labels[op] + first(str(config, "alias"), str(args, "script_id"), str(config, "id"), "script")
	case UpdateScript:
		return labels[op] + first(str(config, "alias"), str(args, "script_id"), "script")
	case DeleteScript:
		return labels[op] + str(args, "script_id")

	case CreateTheme, UpdateTheme, DeleteTheme:
		return labels[op] + first(str(args, "theme_name"), "theme")

	case ApplyDashboard:
		return labels[op] + first(str(args, "filename"), DefaultDashboardFile)
	case DeleteDashboard:
		return labels[op] + str(args, "filename")
	}
	return "Update configuration: " + string(op)
}

// ClassifyFile maps a config path to a commit category by name. It
// returns "" when the path matches none.
func ClassifyFile(path string) string {
	p := strings.ToLower(path)
	for _, rule := range fileRules {
		for _, needle := range rule.needles {
			if strings.Contains(p, needle) {
				return rule.category
			}
		}
	}
	return ""
}

// fileRules are checked in order; the first match wins.
var fileRules = []struct {
	category string
	needles  []string
}{
	{"Automations", []string{"automation"}},
	{"Scripts", []string{"script"}},
	{"Themes", []string{"theme"}},
	{"Dashboards", []string{"lovelace", "dashboard"}},
	{"Configuration", []string{"configuration"}},
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64, int, int64, bool:
		return fmt.Sprint(v)
	}
	return ""
}

func obj(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	o, _ := m[key].(map[string]any)
	return o
}

func first(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
