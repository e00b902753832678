package systems

import (
	"github.com/automoto/worldview/assets"
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var blurOp = &ebiten.DrawRectShaderOptions{
	Uniforms: map[string]any{},
}

// motionBlurActive is false when the pass is switched off or its shader failed
// to compile; the world then draws straight to the screen.
func motionBlurActive() bool {
	return cfg.MotionBlur.Enabled && assets.MotionBlurShader != nil
}

// UpdateMotionBlur feeds the camera's last axis delta into the blur uniforms.
// Must run after UpdateCamera.
func UpdateMotionBlur(e *ecs.ECS) {
	entry, ok := components.MotionBlur.First(e.World)
	if !ok {
		return
	}
	blur := components.MotionBlur.Get(entry)
	if camera, ok := getCamera(e); ok {
		blur.Velocity = camera.State.Velocity()
	}
	blur.Amount = cfg.MotionBlur.Amount
}

// DrawMotionBlur composites the world buffer onto the screen through the
// blur shader.
func DrawMotionBlur(e *ecs.ECS, screen *ebiten.Image) {
	if !motionBlurActive() {
		return
	}
	entry, ok := components.MotionBlur.First(e.World)
	if !ok {
		return
	}
	blur := components.MotionBlur.Get(entry)
	if blur.Buffer == nil {
		return
	}

	w, h := blur.Buffer.Bounds().Dx(), blur.Buffer.Bounds().Dy()
	blurOp.GeoM.Reset()
	blurOp.Uniforms["Velocity"] = float32(blur.Velocity)
	blurOp.Uniforms["BlurAmount"] = float32(blur.Amount)
	blurOp.Images[0] = blur.Buffer
	screen.DrawRectShader(w, h, assets.MotionBlurShader, blurOp)
}
