package agent

// Health is the agent's health report.
type Health struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	ConfigPath string `json:"config_path"`
	GitEnabled bool   `json:"git_enabled"`
}

// EntityListOptions narrows ha_list_entities. Unset fields are not sent.
type EntityListOptions struct {
	Domain      string `url:"domain,omitempty" mapstructure:"domain"`
	Search      string `url:"search,omitempty" mapstructure:"search"`
	Page        int    `url:"page,omitempty" mapstructure:"page"`
	PageSize    int    `url:"page_size,omitempty" mapstructure:"page_size"`
	IDsOnly     *bool  `url:"ids_only,omitempty" mapstructure:"ids_only"`
	SummaryOnly *bool  `url:"summary_only,omitempty" mapstructure:"summary_only"`
	AreaID      string `url:"area_id,omitempty" mapstructure:"area_id"`
	AreaName    string `url:"area_name,omitempty" mapstructure:"area_name"`
	NoArea      *bool  `url:"no_area,omitempty" mapstructure:"no_area"`
}

// projected reports whether the agent will reshape the listing.
func (o EntityListOptions) projected() bool {
	return isTrue(o.IDsOnly) || isTrue(o.SummaryOnly)
}

// RenameEntityRequest renames an entity id and optionally its display name.
type RenameEntityRequest struct {
	OldEntityID string `json:"old_entity_id" mapstructure:"old_entity_id"`
	NewEntityID string `json:"new_entity_id" mapstructure:"new_entity_id"`
	NewName     string `json:"new_name,omitempty" mapstructure:"new_name"`
}

// EntityRegistryFilter narrows the entity registry listing.
type EntityRegistryFilter struct {
	AreaID   string `url:"area_id,omitempty" mapstructure:"area_id"`
	DeviceID string `url:"device_id,omitempty" mapstructure:"device_id"`
	Domain   string `url:"domain,omitempty" mapstructure:"domain"`
}

// EntityRegistryUpdate changes registry metadata of one entity. Only set
// fields are sent.
type EntityRegistryUpdate struct {
	EntityID    string   `json:"entity_id" mapstructure:"entity_id"`
	Name        *string  `json:"name,omitempty" mapstructure:"name"`
	Icon        *string  `json:"icon,omitempty" mapstructure:"icon"`
	AreaID      *string  `json:"area_id,omitempty" mapstructure:"area_id"`
	DisabledBy  *string  `json:"disabled_by,omitempty" mapstructure:"disabled_by"`
	HiddenBy    *string  `json:"hidden_by,omitempty" mapstructure:"hidden_by"`
	Aliases     []string `json:"aliases,omitempty" mapstructure:"aliases"`
	NewEntityID *string  `json:"new_entity_id,omitempty" mapstructure:"new_entity_id"`
}

// AreaRequest creates or updates an area.
type AreaRequest struct {
	AreaID  string   `json:"area_id,omitempty" mapstructure:"area_id"`
	Name    string   `json:"name,omitempty" mapstructure:"name"`
	Aliases []string `json:"aliases,omitempty" mapstructure:"aliases"`
	Icon    string   `json:"icon,omitempty" mapstructure:"icon"`
	Picture string   `json:"picture,omitempty" mapstructure:"picture"`
}

// DeviceRegistryFilter narrows the device registry listing.
type DeviceRegistryFilter struct {
	AreaID string `url:"area_id,omitempty" mapstructure:"area_id"`
}

// DeviceRegistryUpdate changes registry metadata of one device.
type DeviceRegistryUpdate struct {
	DeviceID   string  `json:"device_id" mapstructure:"device_id"`
	NameByUser *string `json:"name_by_user,omitempty" mapstructure:"name_by_user"`
	AreaID     *string `json:"area_id,omitempty" mapstructure:"area_id"`
	DisabledBy *string `json:"disabled_by,omitempty" mapstructure:"disabled_by"`
}

// LogbookOptions filters logbook entries. Times are ISO-8601 strings.
type LogbookOptions struct {
	StartTime string `url:"start_time,omitempty" mapstructure:"start_time"`
	EndTime   string `url:"end_time,omitempty" mapstructure:"end_time"`
	Hours     int    `url:"hours,omitempty" mapstructure:"hours"`
	EntityID  string `url:"entity_id,omitempty" mapstructure:"entity_id"`
	Domain    string `url:"domain,omitempty" mapstructure:"domain"`
	EventType string `url:"event_type,omitempty" mapstructure:"event_type"`
	Search    string `url:"search,omitempty" mapstructure:"search"`
	Limit     int    `url:"limit,omitempty" mapstructure:"limit"`
}

// ServiceCall invokes a Home Assistant service.
type ServiceCall struct {
	Domain      string         `json:"domain" mapstructure:"domain"`
	Service     string         `json:"service" mapstructure:"service"`
	ServiceData map[string]any `json:"service_data,omitempty" mapstructure:"service_data"`
	Target      map[string]any `json:"target,omitempty" mapstructure:"target"`
}

// ApplyDashboardRequest writes a generated Lovelace dashboard.
type ApplyDashboardRequest struct {
	DashboardConfig   map[string]any `json:"dashboard_config" mapstructure:"dashboard_config"`
	CreateBackup      *bool          `json:"create_backup,omitempty" mapstructure:"create_backup"`
	Filename          string         `json:"filename,omitempty" mapstructure:"filename"`
	RegisterDashboard *bool          `json:"register_dashboard,omitempty" mapstructure:"register_dashboard"`
	CommitMessage     string         `json:"commit_message,omitempty" mapstructure:"-"`
}

// DeleteDashboardOptions removes a dashboard file.
type DeleteDashboardOptions struct {
	Filename         string `url:"-" mapstructure:"filename"`
	RemoveFromConfig *bool  `url:"remove_from_config,omitempty" mapstructure:"remove_from_config"`
	CreateBackup     *bool  `url:"create_backup,omitempty" mapstructure:"create_backup"`
	CommitMessage    string `url:"commit_message,omitempty" mapstructure:"-"`
}

func isTrue(b *bool) bool { return b != nil && *b }
