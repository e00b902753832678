package gamemath

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Lens describes a pinhole camera looking down the world +X axis, with
// world Z mapped to screen right and world Y to screen up.
type Lens struct {
	FovY float64 // vertical field of view, degrees
	Near float64
	Far  float64
}

// FocalLength is the distance to an image plane viewportHeight pixels tall.
func (l Lens) FocalLength(viewportHeight float64) float64 {
	return (viewportHeight / 2) / math.Tan(DegToRad(l.FovY)/2)
}

// Project maps a world point to screen pixels. ok is false when the point is
// outside the near/far range. depth is the distance along the view axis.
func (l Lens) Project(p, eye Vec3, viewportWidth, viewportHeight float64) (sx, sy, depth float64, ok bool) {
	rel := p.Sub(eye)
	depth = rel.X
	if depth < l.Near || depth > l.Far {
		return 0, 0, depth, false
	}
	f := l.FocalLength(viewportHeight)
	sx = viewportWidth/2 + rel.Z*f/depth
	sy = viewportHeight/2 - rel.Y*f/depth
	return sx, sy, depth, true
}

// FogExp2 returns how much of the surface colour survives at depth, in [0,1].
func FogExp2(density, depth float64) float64 {
	d := density * depth
	return math.Exp(-d * d)
}
