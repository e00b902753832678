package components

import (
	"image/color"

	"github.com/automoto/worldview/gamemath"
	"github.com/yohamta/donburi"
)

type LightData struct {
	Position  gamemath.Vec3
	Color     color.RGBA
	Intensity float64
	Decay     float64
}

var Light = donburi.NewComponentType[LightData]()

// FloorData is a flat box drawn as its projected top face.
type FloorData struct {
	Position gamemath.Vec3
	Size     gamemath.Vec3
	Color    color.RGBA
}

var Floor = donburi.NewComponentType[FloorData]()
