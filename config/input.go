package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPanBack
	ActionPanForward
	ActionToggleHUD
	ActionTogglePanel
	ActionTogglePolicy
	ActionResetCamera
	ActionFullscreen
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionPanBack: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyPageUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionPanForward: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD, ebiten.KeyPageDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionTogglePanel: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionTogglePolicy: {
				Keys: []ebiten.Key{ebiten.KeyC},
			},
			ActionResetCamera: {
				Keys: []ebiten.Key{ebiten.KeyHome},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
		},
	}
}
