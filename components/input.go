package components

import (
	cfg "github.com/automoto/worldview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputTouch
	InputGamepad
)

func (m InputMethod) String() string {
	switch m {
	case InputMouse:
		return "mouse"
	case InputTouch:
		return "touch"
	case InputGamepad:
		return "gamepad"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PointerData tracks the mouse and the active touch between frames so that
// per-frame movement can be derived from absolute positions.
type PointerData struct {
	CursorX, CursorY int
	HasCursor        bool

	TouchID  ebiten.TouchID
	Touching bool

	// Press origin and travelled distance, to tell a click from a drag.
	Press       math.Vec2
	Travel      float64
	PressedOnUI bool
}

var Pointer = donburi.NewComponentType[PointerData]()
