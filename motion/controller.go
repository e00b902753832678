package motion

// Scales are the per-source factors applied to raw input deltas.
type Scales struct {
	Wheel float64
	Drag  float64
	Touch float64
}

// DefaultScales matches the night scene; the day scene uses a 0.02 touch scale.
var DefaultScales = Scales{
	Wheel: 0.01,
	Drag:  0.01,
	Touch: 0.025,
}

// Controller turns wheel, drag and swipe events into changes of the camera target.
// It never moves the camera itself; State.Step does that once per frame.
type Controller struct {
	state  *State
	scales Scales

	dragging bool

	swiping    bool
	hasSample  bool
	prevTouchX float64
}

// NewController wires a controller to the camera state it steers.
func NewController(state *State, scales Scales) *Controller {
	return &Controller{state: state, scales: scales}
}

// State returns the camera state this controller steers.
func (c *Controller) State() *State {
	return c.state
}

// Scales returns the input scale factors.
func (c *Controller) Scales() Scales {
	return c.scales
}

// SetScales replaces the input scale factors.
func (c *Controller) SetScales(s Scales) {
	c.scales = s
}

// Wheel applies a scroll delta, in browser-style pixels (positive = scroll down).
func (c *Controller) Wheel(deltaY float64) {
	c.state.Target += deltaY * c.scales.Wheel
}

// Press starts a drag.
func (c *Controller) Press() {
	c.dragging = true
}

// Release ends a drag.
func (c *Controller) Release() {
	c.dragging = false
}

// Dragging reports whether a pointer is held down.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Drag applies horizontal pointer movement while dragging. Dragging right pulls the camera back.
func (c *Controller) Drag(movementX float64) {
	if !c.dragging {
		return
	}
	c.state.Target -= movementX * c.scales.Drag
}

// TouchStart begins a swipe. No sample exists until the first move.
func (c *Controller) TouchStart() {
	c.swiping = true
	c.hasSample = false
	c.prevTouchX = 0
}

// TouchMove applies the swipe distance since the previous move and returns the
// target delta. The first move after TouchStart only records a sample.
func (c *Controller) TouchMove(x float64) float64 {
	if !c.swiping {
		return 0
	}
	if !c.hasSample {
		c.hasSample = true
		c.prevTouchX = x
		return 0
	}
	delta := (c.prevTouchX - x) * c.scales.Touch
	c.state.Target += delta
	c.prevTouchX = x
	return delta
}

// TouchEnd clears the swipe sample.
func (c *Controller) TouchEnd() {
	c.swiping = false
	c.hasSample = false
	c.prevTouchX = 0
}

// Swiping reports whether a touch is in progress.
func (c *Controller) Swiping() bool {
	return c.swiping
}
