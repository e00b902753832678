package components

import (
	"github.com/automoto/worldview/assets"
	"github.com/yohamta/donburi"
)

type SceneData struct {
	Scene *assets.Scene
}

var Scene = donburi.NewComponentType[SceneData]()

// ViewportData is the logical screen size. Only Game.Layout writes it.
type ViewportData struct {
	Width       float64
	Height      float64
	FocalLength float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
