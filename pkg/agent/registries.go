package agent

import (
	"context"
	"encoding/json"
)

// Entity registry

func (c *Client) ListEntityRegistry(ctx context.Context, f EntityRegistryFilter) (json.RawMessage, error) {
	q, err := values(f)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "registries.entities.list", "/api/registries/entities/list", q)
}

func (c *Client) GetEntityRegistryEntry(ctx context.Context, entityID string) (json.RawMessage, error) {
	return c.get(ctx, "registries.entities.get", "/api/registries/entities/"+segment(entityID), nil)
}

func (c *Client) UpdateEntityRegistry(ctx context.Context, u EntityRegistryUpdate) (json.RawMessage, error) {
	return c.post(ctx, "registries.entities.update", "/api/registries/entities/update", u)
}

func (c *Client) RemoveEntityRegistryEntry(ctx context.Context, entityID string) (json.RawMessage, error) {
	return c.del(ctx, "registries.entities.remove", "/api/registries/entities/"+segment(entityID), nil)
}

// Area registry

func (c *Client) ListAreas(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "registries.areas.list", "/api/registries/areas/list", nil)
}

func (c *Client) GetArea(ctx context.Context, areaID string) (json.RawMessage, error) {
	return c.get(ctx, "registries.areas.get", "/api/registries/areas/"+segment(areaID), nil)
}

func (c *Client) CreateArea(ctx context.Context, a AreaRequest) (json.RawMessage, error) {
	return c.post(ctx, "registries.areas.create", "/api/registries/areas/create", a)
}

func (c *Client) UpdateArea(ctx context.Context, a AreaRequest) (json.RawMessage, error) {
	return c.post(ctx, "registries.areas.update", "/api/registries/areas/update", a)
}

func (c *Client) DeleteArea(ctx context.Context, areaID string) (json.RawMessage, error) {
	return c.del(ctx, "registries.areas.delete", "/api/registries/areas/"+segment(areaID), nil)
}

// Device registry

func (c *Client) ListDevices(ctx context.Context, f DeviceRegistryFilter) (json.RawMessage, error) {
	q, err := values(f)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "registries.devices.list", "/api/registries/devices/list", q)
}

func (c *Client) GetDevice(ctx context.Context, deviceID string) (json.RawMessage, error) {
	return c.get(ctx, "registries.devices.get", "/api/registries/devices/"+segment(deviceID), nil)
}

func (c *Client) UpdateDevice(ctx context.Context, u DeviceRegistryUpdate) (json.RawMessage, error) {
	return c.post(ctx, "registries.devices.update", "/api/registries/devices/update", u)
}

func (c *Client) RemoveDevice(ctx context.Context, deviceID string) (json.RawMessage, error) {
	return c.del(ctx, "registries.devices.remove", "/api/registries/devices/"+segment(deviceID), nil)
}
