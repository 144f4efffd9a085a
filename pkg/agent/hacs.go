package agent

import (
	"context"
	"encoding/json"
	"net/url"
)

// HACSInstall installs the Home Assistant Community Store integration.
func (c *Client) HACSInstall(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "hacs.install", "/api/hacs/install", nil)
}

func (c *Client) HACSUninstall(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "hacs.uninstall", "/api/hacs/uninstall", nil)
}

func (c *Client) HACSStatus(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "hacs.status", "/api/hacs/status", nil)
}

// HACSListRepositories lists store repositories, optionally by category.
func (c *Client) HACSListRepositories(ctx context.Context, category string) (json.RawMessage, error) {
	var q url.Values
	if category != "" {
		q = url.Values{"category": {category}}
	}
	return c.get(ctx, "hacs.repositories", "/api/hacs/repositories", q)
}

// HACSInstallRepository installs a repository such as "hacs/integration".
func (c *Client) HACSInstallRepository(ctx context.Context, repository, category string) (json.RawMessage, error) {
	body := struct {
		Repository string `json:"repository"`
		Category   string `json:"category,omitempty"`
	}{repository, category}
	return c.post(ctx, "hacs.install_repository", "/api/hacs/install_repository", body)
}

func (c *Client) HACSSearch(ctx context.Context, search, category string) (json.RawMessage, error) {
	q := url.Values{"query": {search}}
	if category != "" {
		q.Set("category", category)
	}
	return c.get(ctx, "hacs.search", "/api/hacs/search", q)
}

func (c *Client) HACSUpdateAll(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "hacs.update_all", "/api/hacs/update_all", nil)
}

func (c *Client) HACSRepositoryDetails(ctx context.Context, repositoryID string) (json.RawMessage, error) {
	return c.get(ctx, "hacs.repository", "/api/hacs/repository/"+segment(repositoryID), nil)
}
