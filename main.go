package main

import (
	"log"

	"github.com/automoto/worldview/config"
	"github.com/automoto/worldview/scenes"
	"github.com/automoto/worldview/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewViewportScene(g)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so resizing changes the visible area
// rather than scaling it.
func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	if r, ok := g.scene.(scenes.Resizer); ok {
		r.SetViewport(width, height)
	}
	return width, height
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; saved settings are applied once the scene exists
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
