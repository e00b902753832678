package components

import (
	"github.com/automoto/worldview/ui"
	"github.com/yohamta/donburi"
)

// SettingsData stores the viewer settings that persist between sessions
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	ShowHUD         bool
	ShowPanel       bool
	Dirty           bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()

// PanelData holds the tuning panel widget tree.
type PanelData struct {
	Panel *ui.TuningPanel
}

var Panel = donburi.NewComponentType[PanelData]()
