package components

import (
	"github.com/automoto/worldview/overlay"
	"github.com/automoto/worldview/ui"
	"github.com/yohamta/donburi"
)

// OverlayData holds the screen-space layer, the item under the cursor and
// the bobbing sources that feed dynamic card coordinates.
type OverlayData struct {
	Layer   *overlay.Layer
	Hovered overlay.Handle // zero when nothing is hovered
	Pressed overlay.Handle // card a press started on, zero for a camera drag
	Bobs    []*ui.Bob
}

var Overlay = donburi.NewComponentType[OverlayData]()
