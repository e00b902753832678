package systems

import (
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func getPanel(e *ecs.ECS) *ui.TuningPanel {
	entry, ok := components.Panel.First(e.World)
	if !ok {
		return nil
	}
	return components.Panel.Get(entry).Panel
}

func panelVisible(e *ecs.ECS) bool {
	settings := getSettings(e)
	return settings != nil && settings.ShowPanel && getPanel(e) != nil
}

// panelContains reports whether a screen point lands on the visible panel.
func panelContains(e *ecs.ECS, x, y int) bool {
	if !panelVisible(e) {
		return false
	}
	return getPanel(e).Contains(x, y)
}

// UpdatePanel refreshes the tuning readout and lets the panel handle input.
func UpdatePanel(e *ecs.ECS) {
	if !panelVisible(e) {
		return
	}
	panel := getPanel(e)
	panel.Refresh(currentReadout(e))
	panel.Update()
}

func DrawPanel(e *ecs.ECS, screen *ebiten.Image) {
	if !panelVisible(e) {
		return
	}
	getPanel(e).Draw(screen)
}

// currentReadout samples the camera and overlay for display.
func currentReadout(e *ecs.ECS) ui.Readout {
	r := ui.Readout{Blur: motionBlurActive()}
	if camera, ok := getCamera(e); ok {
		r.Axis = camera.State.Axis
		r.Target = camera.State.Target
		r.Velocity = camera.State.Velocity()
		r.Min, r.Max = camera.State.Min, camera.State.Max
		r.Policy = camera.Policy.String()
	}
	if ov := getOverlay(e); ov != nil {
		r.Items = ov.Layer.Len()
	}
	if settings := getSettings(e); settings != nil {
		switch {
		case settings.Fullscreen:
			r.Window = "fullscreen"
		case validResolution(settings.ResolutionIndex):
			r.Window = cfg.Settings.Resolutions[settings.ResolutionIndex].Label
		}
	}
	if entry, ok := components.Input.First(e.World); ok {
		r.Input = components.Input.Get(entry).LastInputMethod.String()
	}
	return r
}
