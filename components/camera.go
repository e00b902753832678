package components

import (
	"github.com/automoto/worldview/gamemath"
	"github.com/automoto/worldview/motion"
	"github.com/yohamta/donburi"
)

// CameraData is the singleton viewer camera. Eye.Z mirrors State.Axis after
// every step; the other two coordinates never change.
type CameraData struct {
	Eye        gamemath.Vec3
	State      *motion.State
	Controller *motion.Controller
	Policy     motion.Policy
	RestFrames int     // consecutive frames at rest
	SavedAxis  float64 // last axis handed to persistence
}

var Camera = donburi.NewComponentType[CameraData]()
