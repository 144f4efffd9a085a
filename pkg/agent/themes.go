package agent

import (
	"context"
	"encoding/json"
	"net/url"
)

type themeBody struct {
	ThemeName     string         `json:"theme_name"`
	ThemeConfig   map[string]any `json:"theme_config"`
	CommitMessage string         `json:"commit_message,omitempty"`
}

func (c *Client) ListThemes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "themes.list", "/api/themes/list", nil)
}

func (c *Client) GetTheme(ctx context.Context, name string) (json.RawMessage, error) {
	return c.get(ctx, "themes.get", "/api/themes/get", url.Values{"theme_name": {name}})
}

func (c *Client) CreateTheme(ctx context.Context, name string, config map[string]any, commitMsg string) (json.RawMessage, error) {
	return c.post(ctx, "themes.create", "/api/themes/create", themeBody{name, config, commitMsg})
}

func (c *Client) UpdateTheme(ctx context.Context, name string, config map[string]any, commitMsg string) (json.RawMessage, error) {
	return c.put(ctx, "themes.update", "/api/themes/update", themeBody{name, config, commitMsg})
}

func (c *Client) DeleteTheme(ctx context.Context, name, commitMsg string) (json.RawMessage, error) {
	q := url.Values{"theme_name": {name}}
	if commitMsg != "" {
		q.Set("commit_message", commitMsg)
	}
	return c.del(ctx, "themes.delete", "/api/themes/delete", q)
}

// ReloadThemes asks Home Assistant to re-read theme files.
func (c *Client) ReloadThemes(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "themes.reload", "/api/themes/reload", nil)
}

// CheckThemeConfig verifies the frontend themes include is configured.
func (c *Client) CheckThemeConfig(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "themes.check_config", "/api/themes/check_config", nil)
}
