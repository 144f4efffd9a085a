package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ReadFile returns the content of a file relative to the HA config dir.
func (c *Client) ReadFile(ctx context.Context, path string) (string, error) {
	raw, err := c.get(ctx, "files.read", "/api/files/read", url.Values{"path": {path}})
	if err != nil {
		return "", err
	}
	var resp struct {
		Content string `json:"content"`
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return "", fmt.Errorf("decode file content: %w", err)
		}
	}
	return resp.Content, nil
}

// WriteFile creates or replaces a file. commitMsg is attached to the
// agent's automatic commit and may be empty.
func (c *Client) WriteFile(ctx context.Context, path, content, commitMsg string) error {
	body := struct {
		Path          string `json:"path"`
		Content       string `json:"content"`
		CommitMessage string `json:"commit_message,omitempty"`
	}{path, content, commitMsg}
	_, err := c.post(ctx, "files.write", "/api/files/write", body)
	return err
}

// ListFiles lists a directory. An empty directory means the config root.
func (c *Client) ListFiles(ctx context.Context, directory string) (json.RawMessage, error) {
	if directory == "" {
		directory = "/"
	}
	raw, err := c.get(ctx, "files.list", "/api/files/list", url.Values{"directory": {directory}})
	if err != nil {
		return nil, err
	}
	return pluck(raw, "files"), nil
}

// DeleteFile removes a file.
func (c *Client) DeleteFile(ctx context.Context, path, commitMsg string) error {
	q := url.Values{"path": {path}}
	if commitMsg != "" {
		q.Set("commit_message", commitMsg)
	}
	_, err := c.del(ctx, "files.delete", "/api/files/delete", q)
	return err
}
