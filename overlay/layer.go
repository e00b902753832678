package overlay

import (
	"errors"

	"github.com/solarlune/resolv"
)

var (
	// ErrNotBound is returned when projecting before Bind.
	ErrNotBound = errors.New("overlay: layer is not bound to a camera")
	// ErrAlreadyBound is returned by a second Bind.
	ErrAlreadyBound = errors.New("overlay: layer is already bound")
	// ErrUnknownItem is returned for a handle that is not registered.
	ErrUnknownItem = errors.New("overlay: unknown item")
)

const (
	hitTag      = "overlay"
	hitCellSize = 32
)

// Camera is anything with a position along the travel axis.
type Camera interface {
	AxisPosition() float64
}

// Element is a caller-owned visual. Its size is the size it was last laid out
// at; (0, 0) means it has not been laid out yet.
type Element interface {
	Size() (width, height int)
}

// Activator is implemented by elements that react to being clicked.
type Activator interface {
	Activate()
}

// Viewport is the screen area overlay items are centred in.
type Viewport struct {
	Width, Height float64
}

// Handle identifies a registered item. The zero Handle is never issued.
type Handle uint64

// Wrapper is the positioning node the layer owns for each item.
// Only the layer writes it; everyone else reads.
type Wrapper struct {
	pos           Position
	width, height float64
	placed        bool
}

// Position is the wrapper's last projected top-left corner.
func (w *Wrapper) Position() Position { return w.pos }

// Size is the element size used for the last projection.
func (w *Wrapper) Size() (width, height float64) { return w.width, w.height }

// Placed reports whether the wrapper has been projected at least once.
func (w *Wrapper) Placed() bool { return w.placed }

// Item is one registered overlay element.
type Item struct {
	handle  Handle
	element Element
	wrapper *Wrapper
	spec    Spec
	body    *resolv.Object
}

func (it *Item) Handle() Handle    { return it.handle }
func (it *Item) Element() Element  { return it.element }
func (it *Item) Wrapper() *Wrapper { return it.wrapper }
func (it *Item) Spec() Spec        { return it.spec }

// Layer keeps overlay elements visually pinned to world positions as the camera moves.
type Layer struct {
	pixelsPerUnit float64

	camera     Camera
	originAxis float64
	bound      bool

	items []*Item
	next  Handle

	space          *resolv.Space
	spaceW, spaceH int
}

// NewLayer creates an empty layer. A non-positive pixelsPerUnit falls back to DefaultPixelsPerUnit.
func NewLayer(pixelsPerUnit float64) *Layer {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = DefaultPixelsPerUnit
	}
	return &Layer{pixelsPerUnit: pixelsPerUnit}
}

// PixelsPerUnit returns K, the pixel distance of one unit of camera travel.
func (l *Layer) PixelsPerUnit() float64 { return l.pixelsPerUnit }

// Bind attaches the layer to a camera and captures the zero-parallax origin.
func (l *Layer) Bind(camera Camera) error {
	if l.bound {
		return ErrAlreadyBound
	}
	if camera == nil {
		return ErrNotBound
	}
	l.camera = camera
	l.originAxis = camera.AxisPosition()
	l.bound = true
	return nil
}

// Bound reports whether Bind has succeeded.
func (l *Layer) Bound() bool { return l.bound }

// OriginAxis is the camera axis captured at bind time.
func (l *Layer) OriginAxis() float64 { return l.originAxis }

// Register adds element to the end of the render order.
func (l *Layer) Register(element Element, spec Spec) Handle {
	l.next++
	it := &Item{
		handle:  l.next,
		element: element,
		wrapper: &Wrapper{},
		spec:    spec,
		body:    resolv.NewObject(0, 0, 0, 0, hitTag),
	}
	it.body.Data = it
	l.items = append(l.items, it)
	if l.space != nil {
		l.space.Add(it.body)
	}
	return it.handle
}

// Remove unregisters an item. The element itself is left to its owner.
func (l *Layer) Remove(h Handle) bool {
	for i, it := range l.items {
		if it.handle != h {
			continue
		}
		if l.space != nil {
			l.space.Remove(it.body)
		}
		copy(l.items[i:], l.items[i+1:])
		l.items[len(l.items)-1] = nil
		l.items = l.items[:len(l.items)-1]
		return true
	}
	return false
}

// Len returns the number of registered items.
func (l *Layer) Len() int { return len(l.items) }

// Item looks up a registered item.
func (l *Layer) Item(h Handle) (*Item, bool) {
	for _, it := range l.items {
		if it.handle == h {
			return it, true
		}
	}
	return nil, false
}

// Each visits items in render order.
func (l *Layer) Each(fn func(*Item)) {
	for _, it := range l.items {
		fn(it)
	}
}

// ProjectOne recomputes a single item's wrapper position.
func (l *Layer) ProjectOne(it *Item, vp Viewport) (Position, error) {
	if !l.bound {
		return Position{}, ErrNotBound
	}
	if it == nil {
		return Position{}, ErrUnknownItem
	}
	return l.apply(it, vp, l.camera.AxisPosition()), nil
}

// ProjectAll recomputes every wrapper in registration order. It is the
// per-frame entry point and must run after the camera has stepped.
func (l *Layer) ProjectAll(vp Viewport) error {
	if !l.bound {
		return ErrNotBound
	}
	l.ensureSpace(vp)
	cameraAxis := l.camera.AxisPosition()
	for _, it := range l.items {
		l.apply(it, vp, cameraAxis)
	}
	return nil
}

// apply is the only place wrapper layout is written.
func (l *Layer) apply(it *Item, vp Viewport, cameraAxis float64) Position {
	w, h := it.element.Size()
	pos := Project(Input{
		ViewportWidth:  vp.Width,
		ViewportHeight: vp.Height,
		ElementWidth:   float64(w),
		ElementHeight:  float64(h),
		X:              it.spec.X.Eval(),
		Y:              it.spec.Y.Eval(),
		Z:              it.spec.Z.Eval(),
		OriginAxis:     l.originAxis,
		CameraAxis:     cameraAxis,
		PixelsPerUnit:  l.pixelsPerUnit,
	})

	it.wrapper.pos = pos
	it.wrapper.width = float64(w)
	it.wrapper.height = float64(h)
	it.wrapper.placed = true

	it.body.X = pos.Left
	it.body.Y = pos.Top
	it.body.W = float64(w)
	it.body.H = float64(h)
	if it.body.Space != nil {
		it.body.Update()
	}
	return pos
}

// ensureSpace sizes the hit-test space to the viewport, rebuilding it on resize.
func (l *Layer) ensureSpace(vp Viewport) {
	w, h := int(vp.Width), int(vp.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if l.space != nil && w == l.spaceW && h == l.spaceH {
		return
	}
	l.space = resolv.NewSpace(w, h, hitCellSize, hitCellSize)
	l.spaceW, l.spaceH = w, h
	for _, it := range l.items {
		l.space.Add(it.body)
	}
}

// HitTest returns the topmost placed item whose wrapper contains (x, y).
func (l *Layer) HitTest(x, y float64) (Handle, bool) {
	if l.space == nil {
		return 0, false
	}

	probe := resolv.NewObject(x, y, 1, 1)
	l.space.Add(probe)
	defer l.space.Remove(probe)

	check := probe.Check(0, 0, hitTag)
	if check == nil {
		return 0, false
	}

	best := -1
	for _, obj := range check.Objects {
		it, ok := obj.Data.(*Item)
		if !ok || !it.wrapper.placed || !contains(it.wrapper, x, y) {
			continue
		}
		if idx := l.indexOf(it.handle); idx > best {
			best = idx
		}
	}
	if best < 0 {
		return 0, false
	}
	return l.items[best].handle, true
}

// Activate hit-tests (x, y) and activates the item's element if it supports it.
func (l *Layer) Activate(x, y float64) (Handle, bool) {
	h, ok := l.HitTest(x, y)
	if !ok {
		return 0, false
	}
	it, _ := l.Item(h)
	if a, ok := it.element.(Activator); ok {
		a.Activate()
	}
	return h, true
}

func (l *Layer) indexOf(h Handle) int {
	for i, it := range l.items {
		if it.handle == h {
			return i
		}
	}
	return -1
}

func contains(w *Wrapper, x, y float64) bool {
	return x >= w.pos.Left && x < w.pos.Left+w.width &&
		y >= w.pos.Top && y < w.pos.Top+w.height
}
