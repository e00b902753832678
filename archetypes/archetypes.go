package archetypes

import (
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.MotionBlur,
	)
	Light = newArchetype(
		tags.Light,
		components.Light,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Floor,
	)
	Petal = newArchetype(
		tags.Petal,
		components.Petal,
	)
	Scene = newArchetype(
		components.Scene,
		components.Viewport,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
	Input = newArchetype(
		components.Input,
		components.Pointer,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Panel = newArchetype(
		components.Panel,
	)
	Loading = newArchetype(
		components.Loading,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
