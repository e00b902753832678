package overlay

// Source produces a world coordinate that may change from frame to frame.
type Source interface {
	Value() float64
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func() float64

func (f SourceFunc) Value() float64 { return f() }

// Coordinate is either a constant captured at registration or a dynamic
// source sampled every frame. The zero value is Constant(0).
type Coordinate struct {
	constant float64
	source   Source
}

// Constant captures v once; evaluating it never calls anything.
func Constant(v float64) Coordinate {
	return Coordinate{constant: v}
}

// Dynamic samples src on every evaluation. A nil src behaves as Constant(0).
func Dynamic(src Source) Coordinate {
	return Coordinate{source: src}
}

// DynamicFunc is shorthand for Dynamic(SourceFunc(f)).
func DynamicFunc(f func() float64) Coordinate {
	if f == nil {
		return Coordinate{}
	}
	return Dynamic(SourceFunc(f))
}

// IsDynamic reports whether the coordinate is re-evaluated each frame.
func (c Coordinate) IsDynamic() bool {
	return c.source != nil
}

// Eval returns the coordinate's current value.
func (c Coordinate) Eval() float64 {
	if c.source == nil {
		return c.constant
	}
	return c.source.Value()
}

// Spec is the world placement of an overlay item. Omitted fields are 0.
//
// X and Y are pixel offsets from the viewport centre. Z is a parallax
// multiplier, not a depth: larger Z slides faster as the camera travels.
type Spec struct {
	X, Y, Z Coordinate
}
