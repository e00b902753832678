package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the viewer.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Resizer is implemented by scenes that track the logical screen size.
type Resizer interface {
	SetViewport(width, height int)
}
