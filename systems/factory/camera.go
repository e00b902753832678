package factory

import (
	"github.com/automoto/worldview/archetypes"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/gamemath"
	"github.com/automoto/worldview/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the viewer camera at start, travelling along start.Z
// between minBound and maxBound.
func CreateCamera(ecs *ecs.ECS, start gamemath.Vec3, minBound, maxBound float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	state := motion.NewState(start.Z, cfg.Camera.Damping, minBound, maxBound)
	components.Camera.SetValue(camera, components.CameraData{
		Eye:        start,
		State:      state,
		Controller: motion.NewController(state, cfg.Camera.Scales),
		Policy:     cfg.Camera.Policy,
		SavedAxis:  start.Z,
	})
	components.MotionBlur.SetValue(camera, components.MotionBlurData{
		Amount: cfg.MotionBlur.Amount,
	})

	return camera
}
