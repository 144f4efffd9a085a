package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_NamesAreUniqueAndPrefixed(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range Names() {
		assert.False(t, seen[name], "duplicate tool %s", name)
		seen[name] = true
		assert.True(t, strings.HasPrefix(name, "ha_"), name)
	}
	assert.Equal(t, Len(), len(seen))
}

func TestCatalog_TagsAgreeWithAnnotations(t *testing.T) {
	for _, tool := range Tools() {
		ann := tool.Annotations
		require.NotNil(t, ann.ReadOnlyHint, tool.Name)
		require.NotNil(t, ann.DestructiveHint, tool.Name)

		switch {
		case strings.HasPrefix(tool.Description, "[READ-ONLY] "):
			assert.True(t, *ann.ReadOnlyHint, tool.Name)
			assert.False(t, *ann.DestructiveHint, tool.Name)
		case strings.HasPrefix(tool.Description, "[WRITE] "):
			assert.False(t, *ann.ReadOnlyHint, tool.Name)
			assert.Equal(t, strings.Contains(tool.Description, "DESTRUCTIVE"), *ann.DestructiveHint, tool.Name)
		default:
			t.Errorf("%s: description has no classification tag", tool.Name)
		}
	}
}

func TestCatalog_Lookup(t *testing.T) {
	tool, ok := Lookup("ha_write_file")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"path", "content"}, tool.InputSchema.Required)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestCatalog_ToolsReturnsCopy(t *testing.T) {
	a := Tools()
	a[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Tools()[0].Name)
}

func TestCatalog_SequencingHints(t *testing.T) {
	hints := map[string]string{
		"ha_reload_config":           "ha_check_config",
		"ha_install_hacs":            "ha_hacs_status",
		"ha_hacs_install_repository": "ha_hacs_search",
		"ha_git_checkpoint":          "ha_git_checkpoint_end",
		"ha_apply_dashboard":         "ha_analyze_entities_for_dashboard",
	}
	for name, ref := range hints {
		tool, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Contains(t, tool.Description, ref, name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		args    map[string]any
		wantErr string
	}{
		{
			name: "valid write",
			tool: "ha_write_file",
			args: map[string]any{"path": "a.yaml", "content": "x: 1"},
		},
		{
			name:    "missing required",
			tool:    "ha_write_file",
			args:    map[string]any{"path": "a.yaml"},
			wantErr: `"content"`,
		},
		{
			name:    "nil args with required fields",
			tool:    "ha_read_file",
			args:    nil,
			wantErr: `"path"`,
		},
		{
			name: "no required fields",
			tool: "ha_git_pending",
			args: map[string]any{},
		},
		{
			name:    "wrong primitive type",
			tool:    "ha_git_history",
			args:    map[string]any{"limit": "ten"},
			wantErr: "limit",
		},
		{
			name: "number accepted",
			tool: "ha_git_history",
			args: map[string]any{"limit": float64(5)},
		},
		{
			name: "enum accepted",
			tool: "ha_create_helper",
			args: map[string]any{"type": "counter", "config": map[string]any{}},
		},
		{
			name:    "enum rejected",
			tool:    "ha_create_helper",
			args:    map[string]any{"type": "input_toggle", "config": map[string]any{}},
			wantErr: "type",
		},
		{
			name:    "log level enum",
			tool:    "ha_get_logs",
			args:    map[string]any{"level": "TRACE"},
			wantErr: "level",
		},
		{
			name:    "object expected",
			tool:    "ha_create_automation",
			args:    map[string]any{"config": "alias: x"},
			wantErr: "config",
		},
		{
			name: "string array",
			tool: "ha_create_area",
			args: map[string]any{"name": "Kitchen", "aliases": []any{"cooking"}},
		},
		{
			name: "null optional argument",
			tool: "ha_list_entities",
			args: map[string]any{"domain": nil},
		},
		{
			name: "null description on write",
			tool: "ha_write_file",
			args: map[string]any{"path": "a.yaml", "content": "x: 1", "description": nil},
		},
		{
			name:    "null required argument",
			tool:    "ha_write_file",
			args:    map[string]any{"path": "a.yaml", "content": nil},
			wantErr: "content",
		},
		{
			name:    "string array item type",
			tool:    "ha_create_area",
			args:    map[string]any{"name": "Kitchen", "aliases": []any{float64(1)}},
			wantErr: "aliases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tool, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.tool, ve.Tool)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_DoesNotMutateArgs(t *testing.T) {
	args := map[string]any{"domain": nil}
	require.NoError(t, Validate("ha_list_entities", args))
	assert.Contains(t, args, "domain")
}

func TestValidate_UnknownTool(t *testing.T) {
	err := Validate("ha_bogus", map[string]any{})
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestValidate_EveryToolHasSchema(t *testing.T) {
	for _, name := range Names() {
		_, ok := schemas[name]
		assert.True(t, ok, name)
	}
}

func TestSteps_ReferToDescribedTools(t *testing.T) {
	for _, s := range Steps() {
		before, ok := Lookup(s.Before)
		require.True(t, ok, s.Before)
		after, ok := Lookup(s.After)
		require.True(t, ok, s.After)

		mentioned := strings.Contains(before.Description, s.After) || strings.Contains(after.Description, s.Before)
		assert.True(t, mentioned, "%s -> %s is not described", s.Before, s.After)
	}
}
