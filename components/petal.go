package components

import (
	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/assets/animations"
	"github.com/automoto/worldview/gamemath"
	"github.com/yohamta/donburi"
)

type PetalData struct {
	Position gamemath.Vec3
	Rotation float64 // radians, screen plane
	Scale    float64
	Region   assets.PetalRegion
	Flipbook *animations.Flipbook
}

var Petal = donburi.NewComponentType[PetalData]()
