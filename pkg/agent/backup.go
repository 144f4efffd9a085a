package agent

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// GitCommit commits pending configuration changes. An empty message lets
// the agent write its own.
func (c *Client) GitCommit(ctx context.Context, message string) (json.RawMessage, error) {
	body := struct {
		Message string `json:"message,omitempty"`
	}{message}
	return c.post(ctx, "backup.commit", "/api/backup/commit", body)
}

// GitPending reports uncommitted changes.
func (c *Client) GitPending(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "backup.pending", "/api/backup/pending", nil)
}

// GitHistory returns up to limit commits, newest first. limit <= 0 uses
// the agent default.
func (c *Client) GitHistory(ctx context.Context, limit int) (json.RawMessage, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	raw, err := c.get(ctx, "backup.history", "/api/backup/history", q)
	if err != nil {
		return nil, err
	}
	return pluck(raw, "commits"), nil
}

// GitRollback restores the configuration at ref.
func (c *Client) GitRollback(ctx context.Context, ref string) (json.RawMessage, error) {
	return c.post(ctx, "backup.rollback", "/api/backup/rollback/"+segment(ref), nil)
}

// GitDiff compares two refs. Both empty shows uncommitted changes; only
// commit1 compares it with HEAD.
func (c *Client) GitDiff(ctx context.Context, commit1, commit2 string) (json.RawMessage, error) {
	q := url.Values{}
	if commit1 != "" {
		q.Set("commit1", commit1)
	}
	if commit2 != "" {
		q.Set("commit2", commit2)
	}
	return c.get(ctx, "backup.diff", "/api/backup/diff", q)
}

// GitCheckpoint tags the current state before a batch of related changes
// and suspends automatic commits until GitCheckpointEnd.
func (c *Client) GitCheckpoint(ctx context.Context, userRequest string) (json.RawMessage, error) {
	body := struct {
		UserRequest string `json:"user_request"`
	}{userRequest}
	return c.post(ctx, "backup.checkpoint", "/api/backup/checkpoint", body)
}

func (c *Client) GitCheckpointEnd(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "backup.checkpoint_end", "/api/backup/checkpoint/end", nil)
}
