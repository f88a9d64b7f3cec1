package limelight

import "math"

// Vec2 is a 2D vector used for screen positions, sizes, and offsets
// throughout the API. The coordinate system has its origin at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o component-wise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o component-wise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Vec3 is a 3D vector used for world-space positions and extents.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o component-wise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o component-wise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner, in
// screen pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Shape selects the visual masking of the spotlight cutout. It governs only
// corner rounding and clipping; the region geometry is the same for all
// shapes.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	}
	return "unknown"
}

// Insets describes host UI safe-area offsets applied when focusing UI
// elements. Captured once at Spotlight construction; changing the host
// inset afterwards has no effect on an existing spotlight.
type Insets struct {
	Top float64
}

// Timing groups the fixed animation durations used by a Spotlight, in
// seconds. The zero value is not usable; start from DefaultTiming.
type Timing struct {
	// Move is the duration of the position/size glide when retargeting.
	Move float32
	// Fade is the overlay fade-in/fade-out duration.
	Fade float32
	// Shape is the corner-rounding transition duration for SetShape.
	Shape float32
	// PulseHalfPeriod is the time between pulse direction reversals.
	PulseHalfPeriod float32
}

// DefaultTiming returns the standard durations.
func DefaultTiming() Timing {
	return Timing{
		Move:            0.25,
		Fade:            0.3,
		Shape:           0.15,
		PulseHalfPeriod: 1.2,
	}
}

const (
	// OverlayAlpha is the opacity the darkened overlay fades in to.
	OverlayAlpha = 0.6

	// ExtentPadding scales a tracked object's derived radius so the shape
	// stays slightly larger than the object.
	ExtentPadding = 1.5

	// hintOffset is the gap between the spotlight's bottom edge and the
	// caption's top edge.
	hintOffset = 12.0

	// hintMargin keeps the caption away from the screen edges.
	hintMargin = 8.0
)
