package systems

import (
	"github.com/automoto/worldview/components"
	"github.com/automoto/worldview/overlay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// cardElement is an overlay element that draws itself and is laid out lazily.
type cardElement interface {
	Draw(screen *ebiten.Image, left, top float64)
	LaidOut() bool
	Layout()
}

type hoverable interface {
	SetHovered(bool)
}

func getOverlay(ecs *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Overlay.Get(entry)
}

func getViewport(ecs *ecs.ECS) (overlay.Viewport, bool) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return overlay.Viewport{}, false
	}
	vp := components.Viewport.Get(entry)
	if vp.Width <= 0 || vp.Height <= 0 {
		return overlay.Viewport{}, false
	}
	return overlay.Viewport{Width: vp.Width, Height: vp.Height}, true
}

// UpdateOverlay advances dynamic coordinate sources, then re-projects every
// card against the camera position of this tick. Must run after UpdateCamera.
func UpdateOverlay(ecs *ecs.ECS) {
	ov := getOverlay(ecs)
	if ov == nil {
		return
	}

	dt := 1.0 / float64(ebiten.TPS())
	for _, bob := range ov.Bobs {
		bob.Update(dt)
	}

	if !ov.Layer.Bound() {
		return
	}
	vp, ok := getViewport(ecs)
	if !ok {
		return
	}
	if err := ov.Layer.ProjectAll(vp); err != nil {
		return
	}

	updateHover(ecs, ov)
}

func updateHover(ecs *ecs.ECS, ov *components.OverlayData) {
	hovered := overlay.Handle(0)
	if entry, ok := components.Pointer.First(ecs.World); ok {
		pointer := components.Pointer.Get(entry)
		if pointer.HasCursor {
			hovered, _ = ov.Layer.HitTest(float64(pointer.CursorX), float64(pointer.CursorY))
		}
	}
	if hovered == ov.Hovered {
		return
	}
	ov.Layer.Each(func(it *overlay.Item) {
		if h, ok := it.Element().(hoverable); ok {
			h.SetHovered(it.Handle() == hovered)
		}
	})
	ov.Hovered = hovered

	if hovered != 0 {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// DrawOverlay draws cards in registration order at their wrapper positions.
// A card drawn for the first time is laid out and re-projected first, so it
// never shows at its unlaid-out position.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	ov := getOverlay(ecs)
	if ov == nil || !ov.Layer.Bound() {
		return
	}
	vp, ok := getViewport(ecs)
	if !ok {
		return
	}

	ov.Layer.Each(func(it *overlay.Item) {
		card, ok := it.Element().(cardElement)
		if !ok {
			return
		}
		pos := it.Wrapper().Position()
		if !card.LaidOut() {
			card.Layout()
			p, err := ov.Layer.ProjectOne(it, vp)
			if err != nil {
				return
			}
			pos = p
		}
		if !it.Wrapper().Placed() {
			return
		}
		if offscreen(pos, it.Wrapper(), vp) {
			return
		}
		card.Draw(screen, pos.Left, pos.Top)
	})
}

func offscreen(pos overlay.Position, w *overlay.Wrapper, vp overlay.Viewport) bool {
	width, height := w.Size()
	return pos.Left+width < 0 || pos.Left > vp.Width ||
		pos.Top+height < 0 || pos.Top > vp.Height
}
