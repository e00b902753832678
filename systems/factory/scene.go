package factory

import (
	"github.com/automoto/worldview/archetypes"
	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene stores the loaded scene and an empty viewport. The viewport is
// filled in by the first Layout call.
func CreateScene(ecs *ecs.ECS, scene *assets.Scene) *donburi.Entry {
	entry := archetypes.Scene.Spawn(ecs)
	components.Scene.SetValue(entry, components.SceneData{Scene: scene})
	return entry
}

func CreateLight(ecs *ecs.ECS, spawn assets.LightSpawn) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	components.Light.SetValue(light, components.LightData{
		Position:  spawn.Position,
		Color:     spawn.Color,
		Intensity: spawn.Intensity,
		Decay:     spawn.Decay,
	})
	return light
}

func CreateFloor(ecs *ecs.ECS, spawn assets.FloorSpawn) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	components.Floor.SetValue(floor, components.FloorData{
		Position: spawn.Position,
		Size:     spawn.Size,
		Color:    spawn.Color,
	})
	return floor
}
