package factory

import (
	"github.com/automoto/worldview/archetypes"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateSettings seeds the settings singleton from the config globals.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		ShowHUD:         cfg.Debug.ShowHUD,
		ShowPanel:       cfg.Debug.ShowPanel,
	})
	return settings
}

func CreateLoading(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Loading.Spawn(ecs)
}

func CreatePanel(ecs *ecs.ECS, panel *ui.TuningPanel) *donburi.Entry {
	entry := archetypes.Panel.Spawn(ecs)
	components.Panel.SetValue(entry, components.PanelData{Panel: panel})
	return entry
}
