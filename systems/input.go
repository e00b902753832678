package systems

import (
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepad state into the action buffer.
// Must run BEFORE UpdatePointer and UpdateSettings in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				input.LastInputMethod = components.InputKeyboard
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					input.LastInputMethod = components.InputGamepad
				}
			}
		}
	}

	// Merge the left stick into the pan actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionPanBack] = true
			input.LastInputMethod = components.InputGamepad
		}
		if horizontal > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionPanForward] = true
			input.LastInputMethod = components.InputGamepad
		}
	}

	applyPanActions(ecs, input)
}

// applyPanActions turns held pan actions into wheel-equivalent target nudges.
func applyPanActions(ecs *ecs.ECS, input *components.InputData) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	if input.Current[cfg.ActionPanBack] {
		camera.Controller.Wheel(-cfg.Camera.KeyPanPixels)
	}
	if input.Current[cfg.ActionPanForward] {
		camera.Controller.Wheel(cfg.Camera.KeyPanPixels)
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input, components.Pointer))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
