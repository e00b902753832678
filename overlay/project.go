package overlay

// DefaultPixelsPerUnit is the screen distance, in pixels, of one world unit of camera travel.
const DefaultPixelsPerUnit = 40.0

// Input is everything a single projection depends on.
type Input struct {
	ViewportWidth, ViewportHeight float64
	ElementWidth, ElementHeight   float64
	X, Y, Z                       float64
	OriginAxis, CameraAxis        float64
	PixelsPerUnit                 float64
}

// Position is the top-left corner of an item's wrapper in screen pixels.
type Position struct {
	Top, Left float64
}

// Project centres the element in the viewport, offsets it by (x, y) and slides
// it horizontally by the camera's travel since bind, scaled by (1 + z).
func Project(in Input) Position {
	top := in.ViewportHeight/2 - in.ElementHeight/2 + in.Y
	left := in.ViewportWidth/2 - in.ElementWidth/2 +
		in.X +
		(in.OriginAxis-in.CameraAxis)*in.PixelsPerUnit*(1+in.Z)
	return Position{Top: top, Left: left}
}
