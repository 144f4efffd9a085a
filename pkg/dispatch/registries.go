package dispatch

import (
	"context"

	"github.com/aretw0/hamcp/pkg/agent"
)

func (d *Dispatcher) registryHandlers() map[string]Handler {
	return map[string]Handler{
		"ha_get_entity_registry_list": func(ctx context.Context, args map[string]any) (any, error) {
			var f agent.EntityRegistryFilter
			if err := decode(args, &f); err != nil {
				return nil, err
			}
			return d.backend.ListEntityRegistry(ctx, f)
		},
		"ha_get_entity_registry_entry": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetEntityRegistryEntry(ctx, str(args, "entity_id"))
		},
		"ha_update_entity_registry": func(ctx context.Context, args map[string]any) (any, error) {
			var u agent.EntityRegistryUpdate
			if err := decode(args, &u); err != nil {
				return nil, err
			}
			return d.backend.UpdateEntityRegistry(ctx, u)
		},
		"ha_remove_entity_registry_entry": func(ctx context.Context, args map[string]any) (any, error) {
			id := str(args, "entity_id")
			raw, err := d.backend.RemoveEntityRegistryEntry(ctx, id)
			return ack(raw, err, "Entity removed from registry: "+id)
		},

		"ha_get_area_registry_list": func(ctx context.Context, _ map[string]any) (any, error) {
			return d.backend.ListAreas(ctx)
		},
		"ha_get_area_registry_entry": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetArea(ctx, str(args, "area_id"))
		},
		"ha_create_area": func(ctx context.Context, args map[string]any) (any, error) {
			var a agent.AreaRequest
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return d.backend.CreateArea(ctx, a)
		},
		"ha_update_area": func(ctx context.Context, args map[string]any) (any, error) {
			var a agent.AreaRequest
			if err := decode(args, &a); err != nil {
				return nil, err
			}
			return d.backend.UpdateArea(ctx, a)
		},
		"ha_delete_area": func(ctx context.Context, args map[string]any) (any, error) {
			id := str(args, "area_id")
			raw, err := d.backend.DeleteArea(ctx, id)
			return ack(raw, err, "Area deleted successfully: "+id)
		},

		"ha_get_device_registry_list": func(ctx context.Context, args map[string]any) (any, error) {
			var f agent.DeviceRegistryFilter
			if err := decode(args, &f); err != nil {
				return nil, err
			}
			return d.backend.ListDevices(ctx, f)
		},
		"ha_get_device_registry_entry": func(ctx context.Context, args map[string]any) (any, error) {
			return d.backend.GetDevice(ctx, str(args, "device_id"))
		},
		"ha_update_device_registry": func(ctx context.Context, args map[string]any) (any, error) {
			var u agent.DeviceRegistryUpdate
			if err := decode(args, &u); err != nil {
				return nil, err
			}
			return d.backend.UpdateDevice(ctx, u)
		},
		"ha_remove_device_registry_entry": func(ctx context.Context, args map[string]any) (any, error) {
			id := str(args, "device_id")
			raw, err := d.backend.RemoveDevice(ctx, id)
			return ack(raw, err, "Device removed from registry: "+id)
		},
	}
}
