package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/commitmsg"
)

func (d *Dispatcher) fileHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_read_file": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.ReadFile(ctx, str(args, "path"))
		},
		"ha_write_file": func(ctx context.Context, args map[string]any) (any, error) {
			path := str(args, "path")
			msg := commitmsg.Derive(commitmsg.WriteFile, args)
			if err := d.backend.WriteFile(ctx, path, str(args, "content"), msg); err != nil {
				return nil, err
			}
			return "File written successfully: " + path, nil
		},
		"ha_list_files": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.ListFiles(ctx, str(args, "directory"))
		},
		"ha_delete_file": func(ctx context.Context, args map[string]any) (any, error) {
			path := str(args, "path")
			msg := commitmsg.Derive(commitmsg.DeleteFile, args)
			if err := d.backend.DeleteFile(ctx, path, msg); err != nil {
				return nil, err
			}
			return "File deleted successfully: " + path, nil
		},
	}
}
