package systems

import (
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func getSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}

func markSettingsDirty(e *ecs.ECS) {
	if settings := getSettings(e); settings != nil {
		settings.Dirty = true
	}
}

// UpdateSettings handles the toggle actions. Must run after UpdateInput.
func UpdateSettings(e *ecs.ECS) {
	settings := getSettings(e)
	if settings == nil {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		settings.ShowPanel = !settings.ShowPanel
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionTogglePolicy).JustPressed {
		ToggleClampPolicy(e)
	}
	if GetAction(input, cfg.ActionResetCamera).JustPressed {
		ResetCamera(e)
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}
}

// CycleResolution steps the window through the configured sizes. It does
// nothing while fullscreen.
func CycleResolution(e *ecs.ECS) {
	settings := getSettings(e)
	if settings == nil || settings.Fullscreen || len(cfg.Settings.Resolutions) == 0 {
		return
	}
	settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
	res := cfg.Settings.Resolutions[settings.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	settings.Dirty = true
}

// ToggleMotionBlur flips the blur pass on or off.
func ToggleMotionBlur(e *ecs.ECS) {
	cfg.MotionBlur.Enabled = !cfg.MotionBlur.Enabled
	markSettingsDirty(e)
}
