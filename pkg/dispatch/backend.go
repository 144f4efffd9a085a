package dispatch

import (
	"context"
	"encoding/json"

	"github.com/aretw0/hamcp/pkg/agent"
)

// Backend is the agent surface the handlers call. *agent.Client implements it.
type Backend interface {
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, content, commitMsg string) error
	ListFiles(ctx context.Context, directory string) (json.RawMessage, error)
	DeleteFile(ctx context.Context, path, commitMsg string) error

	ListEntities(ctx context.Context, opts agent.EntityListOptions) (json.RawMessage, error)
	GetEntityState(ctx context.Context, entityID string) (json.RawMessage, error)
	RenameEntity(ctx context.Context, req agent.RenameEntityRequest) (json.RawMessage, error)
	CallService(ctx context.Context, call agent.ServiceCall) (json.RawMessage, error)

	ListEntityRegistry(ctx context.Context, f agent.EntityRegistryFilter) (json.RawMessage, error)
	GetEntityRegistryEntry(ctx context.Context, entityID string) (json.RawMessage, error)
	UpdateEntityRegistry(ctx context.Context, u agent.EntityRegistryUpdate) (json.RawMessage, error)
	RemoveEntityRegistryEntry(ctx context.Context, entityID string) (json.RawMessage, error)
	ListAreas(ctx context.Context) (json.RawMessage, error)
	GetArea(ctx context.Context, areaID string) (json.RawMessage, error)
	CreateArea(ctx context.Context, a agent.AreaRequest) (json.RawMessage, error)
	UpdateArea(ctx context.Context, a agent.AreaRequest) (json.RawMessage, error)
	DeleteArea(ctx context.Context, areaID string) (json.RawMessage, error)
	ListDevices(ctx context.Context, f agent.DeviceRegistryFilter) (json.RawMessage, error)
	GetDevice(ctx context.Context, deviceID string) (json.RawMessage, error)
	UpdateDevice(ctx context.Context, u agent.DeviceRegistryUpdate) (json.RawMessage, error)
	RemoveDevice(ctx context.Context, deviceID string) (json.RawMessage, error)

	ListHelpers(ctx context.Context, idsOnly bool) (json.RawMessage, error)
	CreateHelper(ctx context.Context, helperType string, config map[string]any, commitMsg string) (json.RawMessage, error)
	DeleteHelper(ctx context.Context, entityID, commitMsg string) (json.RawMessage, error)

	ListAutomations(ctx context.Context, idsOnly bool) (json.RawMessage, error)
	GetAutomation(ctx context.Context, id string) (json.RawMessage, error)
	CreateAutomation(ctx context.Context, config map[string]any, commitMsg string) (json.RawMessage, error)
	UpdateAutomation(ctx context.Context, id string, config map[string]any, commitMsg string) (json.RawMessage, error)
	DeleteAutomation(ctx context.Context, id, commitMsg string) (json.RawMessage, error)

	ListScripts(ctx context.Context, idsOnly bool) (json.RawMessage, error)
	GetScript(ctx context.Context, id string) (json.RawMessage, error)
	CreateScript(ctx context.Context, config map[string]any, commitMsg string) (json.RawMessage, error)
	UpdateScript(ctx context.Context, id string, config map[string]any, commitMsg string) (json.RawMessage, error)
	DeleteScript(ctx context.Context, id, commitMsg string) (json.RawMessage, error)

	GitCommit(ctx context.Context, message string) (json.RawMessage, error)
	GitPending(ctx context.Context) (json.RawMessage, error)
	GitHistory(ctx context.Context, limit int) (json.RawMessage, error)
	GitRollback(ctx context.Context, ref string) (json.RawMessage, error)
	GitDiff(ctx context.Context, commit1, commit2 string) (json.RawMessage, error)
	GitCheckpoint(ctx context.Context, userRequest string) (json.RawMessage, error)
	GitCheckpointEnd(ctx context.Context) (json.RawMessage, error)

	CheckConfig(ctx context.Context) (json.RawMessage, error)
	ReloadConfig(ctx context.Context, component string) (json.RawMessage, error)
	Restart(ctx context.Context) (json.RawMessage, error)
	GetLogs(ctx context.Context, limit int, level string) (json.RawMessage, error)
	GetLogbook(ctx context.Context, opts agent.LogbookOptions) (json.RawMessage, error)

	HACSInstall(ctx context.Context) (json.RawMessage, error)
	HACSUninstall(ctx context.Context) (json.RawMessage, error)
	HACSStatus(ctx context.Context) (json.RawMessage, error)
	HACSListRepositories(ctx context.Context, category string) (json.RawMessage, error)
	HACSInstallRepository(ctx context.Context, repository, category string) (json.RawMessage, error)
	HACSSearch(ctx context.Context, search, category string) (json.RawMessage, error)
	HACSUpdateAll(ctx context.Context) (json.RawMessage, error)
	HACSRepositoryDetails(ctx context.Context, repositoryID string) (json.RawMessage, error)

	ListStoreAddons(ctx context.Context) (json.RawMessage, error)
	ListAvailableAddons(ctx context.Context) (json.RawMessage, error)
	ListInstalledAddons(ctx context.Context) (json.RawMessage, error)
	AddonInfo(ctx context.Context, slug string) (json.RawMessage, error)
	AddonLogs(ctx context.Context, slug string, lines int) (json.RawMessage, error)
	InstallAddon(ctx context.Context, slug string) (json.RawMessage, error)
	UninstallAddon(ctx context.Context, slug string) (json.RawMessage, error)
	StartAddon(ctx context.Context, slug string) (json.RawMessage, error)
	StopAddon(ctx context.Context, slug string) (json.RawMessage, error)
	RestartAddon(ctx context.Context, slug string) (json.RawMessage, error)
	UpdateAddon(ctx context.Context, slug string) (json.RawMessage, error)
	GetAddonOptions(ctx context.Context, slug string) (json.RawMessage, error)
	SetAddonOptions(ctx context.Context, slug string, options map[string]any) (json.RawMessage, error)
	ListAddonRepositories(ctx context.Context) (json.RawMessage, error)
	AddAddonRepository(ctx context.Context, repositoryURL string) (json.RawMessage, error)

	AnalyzeDashboard(ctx context.Context) (json.RawMessage, error)
	PreviewDashboard(ctx context.Context) (json.RawMessage, error)
	ApplyDashboard(ctx context.Context, req agent.ApplyDashboardRequest) (json.RawMessage, error)
	DeleteDashboard(ctx context.Context, opts agent.DeleteDashboardOptions) (json.RawMessage, error)

	ListThemes(ctx context.Context) (json.RawMessage, error)
	GetTheme(ctx context.Context, name string) (json.RawMessage, error)
	CreateTheme(ctx context.Context, name string, config map[string]any, commitMsg string) (json.RawMessage, error)
	UpdateTheme(ctx context.Context, name string, config map[string]any, commitMsg string) (json.RawMessage, error)
	DeleteTheme(ctx context.Context, name, commitMsg string) (json.RawMessage, error)
	ReloadThemes(ctx context.Context) (json.RawMessage, error)
	CheckThemeConfig(ctx context.Context) (json.RawMessage, error)
}

var _ Backend = (*agent.Client)(nil)
