package dispatch

import "context"

func (d *Dispatcher) backupHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_git_commit": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GitCommit(ctx, str(args, "message"))
		},
		"ha_git_pending": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.GitPending(ctx)
		},
		"ha_git_history": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GitHistory(ctx, integer(args, "limit"))
		},
		"ha_git_rollback": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GitRollback(ctx, str(args, "commit_hash"))
		},
		"ha_git_diff": func(ctx context.Context, args map[string]any) (any, error) {
			raw, err := d.backend.GitDiff(ctx, str(args, "commit1"), str(args, "commit2"))
			if err != nil {
				return nil, err
			}
			return renderDiff(raw), nil
		},
		"ha_git_checkpoint": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GitCheckpoint(ctx, str(args, "user_request"))
		},
		"ha_git_checkpoint_end": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.GitCheckpointEnd(ctx)
		},
	}
}
