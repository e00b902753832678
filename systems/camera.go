package systems

import (
	"math"

	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera steps the camera exactly once per tick and keeps the eye on
// the axis. It also notices when the camera settles somewhere new so the
// position can be persisted.
func UpdateCamera(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}

	camera.State.Step(camera.Policy)
	camera.Eye.Z = camera.State.Axis

	if math.Abs(camera.State.Velocity()) >= cfg.Camera.RestEpsilon {
		camera.RestFrames = 0
		return
	}
	camera.RestFrames++
	if camera.RestFrames != cfg.Camera.RestFrames {
		return
	}
	if math.Abs(camera.State.Axis-camera.SavedAxis) < cfg.Camera.RestEpsilon {
		return
	}
	camera.SavedAxis = camera.State.Axis
	markSettingsDirty(e)
}

// ResetCamera snaps the camera back to the scene's start position.
func ResetCamera(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	start := cfg.Camera.Start.Z
	if sceneEntry, ok := components.Scene.First(e.World); ok {
		if scene := components.Scene.Get(sceneEntry).Scene; scene != nil {
			start = scene.CameraStart.Z
		}
	}
	camera.State.Snap(start)
	camera.Eye.Z = camera.State.Axis
	camera.RestFrames = 0
}

// ToggleClampPolicy flips the camera between soft and hard clamping.
func ToggleClampPolicy(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	if camera.Policy == motion.PolicySoft {
		camera.Policy = motion.PolicyHard
	} else {
		camera.Policy = motion.PolicySoft
	}
	markSettingsDirty(e)
}
