package agent

import (
	"context"
	"encoding/json"
	"net/url"
)

// Helpers

// ListHelpers lists configured helpers. idsOnly asks the agent for entity
// ids only.
func (c *Client) ListHelpers(ctx context.Context, idsOnly bool) (json.RawMessage, error) {
	return c.get(ctx, "helpers.list", "/api/helpers/list", idsOnlyQuery(idsOnly))
}

// CreateHelper creates a helper of the given type (input_boolean, counter...).
func (c *Client) CreateHelper(ctx context.Context, helperType string, config map[string]any, commitMsg string) (json.RawMessage, error) {
	body := struct {
		Type          string         `json:"type"`
		Config        map[string]any `json:"config"`
		CommitMessage string         `json:"commit_message,omitempty"`
	}{helperType, config, commitMsg}
	return c.post(ctx, "helpers.create", "/api/helpers/create", body)
}

func (c *Client) DeleteHelper(ctx context.Context, entityID, commitMsg string) (json.RawMessage, error) {
	return c.del(ctx, "helpers.delete", "/api/helpers/delete/"+segment(entityID), commitQuery(commitMsg))
}

// Automations

// ListAutomations lists automations. The full listing is narrowed to the
// automations array; an id-only listing is returned as sent.
func (c *Client) ListAutomations(ctx context.Context, idsOnly bool) (json.RawMessage, error) {
	raw, err := c.get(ctx, "automations.list", "/api/automations/list", idsOnlyQuery(idsOnly))
	if err != nil || idsOnly {
		return raw, err
	}
	return pluck(raw, "automations"), nil
}

func (c *Client) GetAutomation(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "automations.get", "/api/automations/get/"+segment(id), nil)
}

// CreateAutomation posts the automation config. The commit message travels
// as a sibling of the config keys.
func (c *Client) CreateAutomation(ctx context.Context, config map[string]any, commitMsg string) (json.RawMessage, error) {
	return c.post(ctx, "automations.create", "/api/automations/create", withCommit(config, commitMsg))
}

func (c *Client) UpdateAutomation(ctx context.Context, id string, config map[string]any, commitMsg string) (json.RawMessage, error) {
	return c.put(ctx, "automations.update", "/api/automations/update/"+segment(id), withCommit(config, commitMsg))
}

func (c *Client) DeleteAutomation(ctx context.Context, id, commitMsg string) (json.RawMessage, error) {
	return c.del(ctx, "automations.delete", "/api/automations/delete/"+segment(id), commitQuery(commitMsg))
}

// Scripts

func (c *Client) ListScripts(ctx context.Context, idsOnly bool) (json.RawMessage, error) {
	raw, err := c.get(ctx, "scripts.list", "/api/scripts/list", idsOnlyQuery(idsOnly))
	if err != nil || idsOnly {
		return raw, err
	}
	return pluck(raw, "scripts"), nil
}

func (c *Client) GetScript(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "scripts.get", "/api/scripts/get/"+segment(id), nil)
}

func (c *Client) CreateScript(ctx context.Context, config map[string]any, commitMsg string) (json.RawMessage, error) {
	return c.post(ctx, "scripts.create", "/api/scripts/create", withCommit(config, commitMsg))
}

func (c *Client) UpdateScript(ctx context.Context, id string, config map[string]any, commitMsg string) (json.RawMessage, error) {
	return c.put(ctx, "scripts.update", "/api/scripts/update/"+segment(id), withCommit(config, commitMsg))
}

func (c *Client) DeleteScript(ctx context.Context, id, commitMsg string) (json.RawMessage, error) {
	return c.del(ctx, "scripts.delete", "/api/scripts/delete/"+segment(id), commitQuery(commitMsg))
}

func idsOnlyQuery(idsOnly bool) url.Values {
	if !idsOnly {
		return nil
	}
	return url.Values{"ids_only": {"true"}}
}

// withCommit returns a shallow copy of config carrying commit_message.
// The caller's map is never modified.
func withCommit(config map[string]any, msg string) map[string]any {
	out := make(map[string]any, len(config)+1)
	for k, v := range config {
		out[k] = v
	}
	if msg != "" {
		out["commit_message"] = msg
	}
	return out
}
