package systems

import (
	"math"

	"github.com/automoto/worldview/components"
	cfg "github.com/automoto/worldview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// clickSlop is how far a press may travel and still count as a click.
const clickSlop = 4.0

var touchIDs []ebiten.TouchID

// UpdatePointer feeds wheel, mouse drag and touch swipes into the camera
// controller, and clicks into the overlay layer.
func UpdatePointer(ecs *ecs.ECS) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	pointer := components.Pointer.Get(inputEntry)
	ov := getOverlay(ecs)

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		// ebiten reports scroll up as positive; the controller wants browser deltaY
		camera.Controller.Wheel(-yoff * cfg.Camera.WheelPixelsPerNotch)
		input.LastInputMethod = components.InputMouse
	}

	updateMouse(ecs, camera, pointer, ov, input)
	updateTouch(camera, pointer, ov, input)
}

func updateMouse(ecs *ecs.ECS, camera *components.CameraData, pointer *components.PointerData, ov *components.OverlayData, input *components.InputData) {
	x, y := ebiten.CursorPosition()
	movementX, movementY := 0, 0
	if pointer.HasCursor {
		movementX, movementY = x-pointer.CursorX, y-pointer.CursorY
	}
	pointer.CursorX, pointer.CursorY = x, y
	pointer.HasCursor = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.LastInputMethod = components.InputMouse
		pointer.Press = dmath.Vec2{X: float64(x), Y: float64(y)}
		pointer.Travel = 0
		pointer.PressedOnUI = panelContains(ecs, x, y)

		switch {
		case pointer.PressedOnUI:
		case ov != nil && pressOverlay(ov, float64(x), float64(y)):
		default:
			camera.Controller.Press()
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		pointer.Travel += math.Abs(float64(movementX)) + math.Abs(float64(movementY))
		camera.Controller.Drag(float64(movementX))
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		camera.Controller.Release()
		if ov != nil {
			releaseOverlay(ov, float64(x), float64(y), pointer.Travel)
		}
		pointer.PressedOnUI = false
	}
}

func updateTouch(camera *components.CameraData, pointer *components.PointerData, ov *components.OverlayData, input *components.InputData) {
	if !pointer.Touching {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) == 0 {
			return
		}
		id := touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		pointer.TouchID = id
		pointer.Touching = true
		pointer.Press = dmath.Vec2{X: float64(x), Y: float64(y)}
		pointer.Travel = 0
		input.LastInputMethod = components.InputTouch

		if ov != nil && pressOverlay(ov, float64(x), float64(y)) {
			return
		}
		camera.Controller.TouchStart()
	}

	if inpututil.IsTouchJustReleased(pointer.TouchID) {
		camera.Controller.TouchEnd()
		pointer.Touching = false
		if ov != nil {
			x, y := inpututil.TouchPositionInPreviousTick(pointer.TouchID)
			releaseOverlay(ov, float64(x), float64(y), pointer.Travel)
		}
		return
	}

	x, y := ebiten.TouchPosition(pointer.TouchID)
	pointer.Travel = math.Max(pointer.Travel, math.Abs(float64(x)-pointer.Press.X)+math.Abs(float64(y)-pointer.Press.Y))
	if camera.Controller.Swiping() {
		camera.Controller.TouchMove(float64(x))
	}
}

// pressOverlay records a press that landed on a card. A press on a card
// never starts a camera drag.
func pressOverlay(ov *components.OverlayData, x, y float64) bool {
	h, ok := ov.Layer.HitTest(x, y)
	if !ok {
		ov.Pressed = 0
		return false
	}
	ov.Pressed = h
	return true
}

// releaseOverlay activates the pressed card when the release lands on it
// without the pointer having wandered.
func releaseOverlay(ov *components.OverlayData, x, y, travel float64) {
	pressed := ov.Pressed
	ov.Pressed = 0
	if pressed == 0 || travel > clickSlop {
		return
	}
	if h, ok := ov.Layer.HitTest(x, y); ok && h == pressed {
		ov.Layer.Activate(x, y)
	}
}
