package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// MotionBlurShader smears the world layer along the travel axis
	MotionBlurShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	src, err := shaderFS.ReadFile("shaders/motionblur.kage")
	if err != nil {
		return err
	}
	MotionBlurShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
