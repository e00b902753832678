package systems

import (
	"fmt"

	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
	hudWidth      = 200
)

// DrawHUD renders the debug readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settings := getSettings(e)
	if settings == nil || !settings.ShowHUD {
		return
	}
	r := currentReadout(e)
	lines := []string{
		fmt.Sprintf("fps %.0f  tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("axis %.3f -> %.3f", r.Axis, r.Target),
		fmt.Sprintf("vel %.4f  clamp %s", r.Velocity, r.Policy),
		fmt.Sprintf("cards %d  input %s", r.Items, r.Input),
	}

	vector.FillRect(screen,
		hudMargin, hudMargin,
		hudWidth, float32(len(lines)*hudLineHeight+hudMargin),
		cfg.BlackOverlay, false)

	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin*2, hudMargin+(i+1)*hudLineHeight, cfg.White)
	}
}
