package tags

import "github.com/yohamta/donburi"

var (
	Camera = donburi.NewTag().SetName("Camera")
	Light  = donburi.NewTag().SetName("Light")
	Petal  = donburi.NewTag().SetName("Petal")
	Floor  = donburi.NewTag().SetName("Floor")
)
