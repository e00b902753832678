package scenes

import (
	"image/color"

	cfg "github.com/automoto/worldview/config"
	"github.com/automoto/worldview/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// FatalScene shows a frame error for one frame, then hands it to ebiten so
// the game loop stops.
type FatalScene struct {
	err   error
	drawn bool
}

func NewFatalScene(err error) *FatalScene {
	return &FatalScene{err: err}
}

func (fs *FatalScene) Err() error {
	return fs.err
}

func (fs *FatalScene) Update() error {
	if fs.drawn {
		return fs.err
	}
	return nil
}

func (fs *FatalScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	fs.drawn = true

	defer func() {
		// Fonts may be what failed to load
		_ = recover()
	}()
	text.Draw(screen, fs.err.Error(), fonts.Regular.Get(), 16, 32, cfg.White)
}
