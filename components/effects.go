package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MotionBlurData carries the blur uniforms and the offscreen world buffer.
type MotionBlurData struct {
	Velocity float64 // camera axis delta of the last frame
	Amount   float64
	Buffer   *ebiten.Image
}

var MotionBlur = donburi.NewComponentType[MotionBlurData]()

// LoadingData is the fullscreen loading veil. The veil is up while Counter > 0
// and fades out once it drops back to zero.
type LoadingData struct {
	Counter int
	Loading bool
	Fade    *gween.Tween
	Alpha   float64
}

var Loading = donburi.NewComponentType[LoadingData]()
