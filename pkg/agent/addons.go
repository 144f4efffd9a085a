package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// ListStoreAddons lists every add-on offered by the configured stores.
func (c *Client) ListStoreAddons(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "addons.store", "/api/addons/store", nil)
}

// ListAvailableAddons lists add-ons with their install state.
func (c *Client) ListAvailableAddons(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "addons.available", "/api/addons/available", nil)
}

func (c *Client) ListInstalledAddons(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "addons.installed", "/api/addons/installed", nil)
}

func (c *Client) AddonInfo(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.get(ctx, "addons.info", addonPath(slug, "info"), nil)
}

// AddonLogs returns the last lines of an add-on's log. lines <= 0 uses the
// agent default.
func (c *Client) AddonLogs(ctx context.Context, slug string, lines int) (json.RawMessage, error) {
	var q url.Values
	if lines > 0 {
		q = url.Values{"lines": {strconv.Itoa(lines)}}
	}
	return c.get(ctx, "addons.logs", addonPath(slug, "logs"), q)
}

// InstallAddon installs an add-on. Image pulls are slow, so the call runs
// under LongTimeout.
func (c *Client) InstallAddon(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.do(ctx, request{
		op:      "addons.install",
		method:  http.MethodPost,
		path:    addonPath(slug, "install"),
		timeout: LongTimeout,
	})
}

func (c *Client) UninstallAddon(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.post(ctx, "addons.uninstall", addonPath(slug, "uninstall"), nil)
}

func (c *Client) StartAddon(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.post(ctx, "addons.start", addonPath(slug, "start"), nil)
}

func (c *Client) StopAddon(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.post(ctx, "addons.stop", addonPath(slug, "stop"), nil)
}

func (c *Client) RestartAddon(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.post(ctx, "addons.restart", addonPath(slug, "restart"), nil)
}

// UpdateAddon updates an add-on to its latest version under LongTimeout.
func (c *Client) UpdateAddon(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.do(ctx, request{
		op:      "addons.update",
		method:  http.MethodPost,
		path:    addonPath(slug, "update"),
		timeout: LongTimeout,
	})
}

func (c *Client) GetAddonOptions(ctx context.Context, slug string) (json.RawMessage, error) {
	return c.get(ctx, "addons.options.get", addonPath(slug, "options"), nil)
}

func (c *Client) SetAddonOptions(ctx context.Context, slug string, options map[string]any) (json.RawMessage, error) {
	body := struct {
		Options map[string]any `json:"options"`
	}{options}
	return c.post(ctx, "addons.options.set", addonPath(slug, "options"), body)
}

// ListAddonRepositories lists add-on store repositories.
func (c *Client) ListAddonRepositories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "addons.repositories.list", "/api/addons/repositories", nil)
}

func (c *Client) AddAddonRepository(ctx context.Context, repositoryURL string) (json.RawMessage, error) {
	body := struct {
		RepositoryURL string `json:"repository_url"`
	}{repositoryURL}
	return c.post(ctx, "addons.repositories.add", "/api/addons/repositories/add", body)
}

func addonPath(slug, action string) string {
	return "/api/addons/" + segment(slug) + "/" + action
}
