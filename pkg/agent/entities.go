package agent

import (
	"context"
	"encoding/json"
)

// ListEntities lists entity states. Without a projection (ids_only,
// summary_only) the result is narrowed to the entities array; projected
// listings are returned whole since the agent reshapes them.
func (c *Client) ListEntities(ctx context.Context, opts EntityListOptions) (json.RawMessage, error) {
	q, err := values(opts)
	if err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, "entities.list", "/api/entities/list", q)
	if err != nil {
		return nil, err
	}
	if opts.projected() {
		return raw, nil
	}
	return pluck(raw, "entities"), nil
}

// GetEntityState returns the live state and attributes of one entity.
func (c *Client) GetEntityState(ctx context.Context, entityID string) (json.RawMessage, error) {
	return c.get(ctx, "entities.state", "/api/entities/state/"+segment(entityID), nil)
}

// RenameEntity changes an entity id, carrying history and references along.
func (c *Client) RenameEntity(ctx context.Context, req RenameEntityRequest) (json.RawMessage, error) {
	return c.post(ctx, "entities.rename", "/api/entities/rename", req)
}

// CallService invokes a Home Assistant service.
func (c *Client) CallService(ctx context.Context, call ServiceCall) (json.RawMessage, error) {
	return c.post(ctx, "services.call", "/api/services/call", call)
}
