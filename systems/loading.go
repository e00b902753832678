package systems

import (
	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getLoading(e *ecs.ECS) *components.LoadingData {
	entry, ok := components.Loading.First(e.World)
	if !ok {
		return nil
	}
	return components.Loading.Get(entry)
}

// BeginLoading raises the veil. Calls nest; each needs a FinishLoading.
func BeginLoading(e *ecs.ECS) {
	if l := getLoading(e); l != nil {
		BeginLoadingData(l)
	}
}

// FinishLoading drops one level of loading. Extra calls are ignored.
func FinishLoading(e *ecs.ECS) {
	if l := getLoading(e); l != nil {
		FinishLoadingData(l)
	}
}

func BeginLoadingData(l *components.LoadingData) {
	l.Counter++
	l.Loading = true
	l.Fade = nil
	l.Alpha = 1
}

func FinishLoadingData(l *components.LoadingData) {
	if l.Counter == 0 {
		return
	}
	l.Counter--
	if l.Counter > 0 {
		return
	}
	l.Loading = false
	l.Fade = gween.New(1, 0, float32(cfg.Loading.FadeSeconds), ease.OutQuad)
}

// UpdateLoading advances the fade once loading has finished.
func UpdateLoading(e *ecs.ECS) {
	if l := getLoading(e); l != nil {
		StepLoading(l, 1/float64(ebiten.TPS()))
	}
}

// StepLoading advances the veil fade by dt seconds.
func StepLoading(l *components.LoadingData, dt float64) {
	if l.Loading || l.Fade == nil {
		return
	}
	alpha, done := l.Fade.Update(float32(dt))
	l.Alpha = float64(alpha)
	if done {
		l.Alpha = 0
		l.Fade = nil
	}
}

func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	l := getLoading(e)
	if l == nil || l.Alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), fade(cfg.Loading.Color, l.Alpha), false)

	if !l.Loading {
		return
	}
	face := fonts.Bold.Get()
	bounds := text.BoundString(face, cfg.Loading.Text)
	text.Draw(screen, cfg.Loading.Text, face, (w-bounds.Dx())/2, h/2, cfg.Loading.TextColor)
}
