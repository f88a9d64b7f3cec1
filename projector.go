package limelight

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedTarget reports an attempt to derive a physical extent from
// an object kind with no defined bounding geometry.
var ErrUnsupportedTarget = errors.New("target kind has no extent")

// ObjectKind discriminates how a tracked object's extent is derived.
type ObjectKind uint8

const (
	// ObjectBody is a rigid body; the extent is its size in three
	// dimensions.
	ObjectBody ObjectKind = iota
	// ObjectGroup is a composite; the extent is its axis-aligned bounding
	// box.
	ObjectGroup
	// ObjectMarker is a point marker with no physical extent. Following one
	// fails with ErrUnsupportedTarget.
	ObjectMarker
)

// String returns the lowercase kind name.
func (k ObjectKind) String() string {
	switch k {
	case ObjectBody:
		return "body"
	case ObjectGroup:
		return "group"
	case ObjectMarker:
		return "marker"
	}
	return "unknown"
}

// TrackedObject is the handle for a moving world object a Spotlight can
// follow. Position and Extent are re-read every frame while following;
// IsDisposed gates each frame's update so a vanished object freezes the
// spotlight instead of erroring.
type TrackedObject interface {
	Kind() ObjectKind
	Position() Vec3
	// Extent returns the object's full dimensions: the body size for
	// ObjectBody, the AABB size for ObjectGroup. Ignored for kinds without
	// an extent.
	Extent() Vec3
	IsDisposed() bool
}

// UIElement is the handle for an on-screen element a Spotlight can frame.
type UIElement interface {
	// AbsolutePosition returns the element's top-left corner in screen
	// pixels, excluding any safe-area inset.
	AbsolutePosition() Vec2
	Size() Vec2
	// IgnoresSafeInsets reports whether the element lives on a host surface
	// that ignores safe-area insets, in which case no inset offset is
	// applied when framing it.
	IgnoresSafeInsets() bool
}

// WorldToScreen projects a world point through the view. visible is false
// when the point is behind the camera or off-screen; callers must treat that
// as "no valid region" and suppress display rather than drawing at a
// degenerate position.
func WorldToScreen(view ViewContext, p Vec3) (Vec2, bool) {
	screen, depth, onScreen := view.Project(p)
	if depth <= 0 || !onScreen {
		return screen, false
	}
	return screen, true
}

// WorldRadiusToPixels converts a world-space radius at a point to screen
// pixels using the per-pixel scale at that depth:
//
//	scale = (viewportHeight/2) / (tan(fov/2) * depth)
//
// Returns 0 when the point is behind the camera.
func WorldRadiusToPixels(view ViewContext, p Vec3, worldRadius float64) float64 {
	_, depth, _ := view.Project(p)
	if depth <= 0 {
		return 0
	}
	scale := (view.ViewportSize().Y / 2) / (math.Tan(view.FOV()/2) * depth)
	return worldRadius * scale
}

// ExtentOf derives a bounding radius for a tracked object: half the largest
// of its three extent dimensions, scaled by ExtentPadding so the spotlight
// stays slightly larger than the object. Kinds without a defined extent fail
// with ErrUnsupportedTarget.
func ExtentOf(obj TrackedObject) (float64, error) {
	switch obj.Kind() {
	case ObjectBody, ObjectGroup:
		e := obj.Extent()
		largest := math.Max(e.X, math.Max(e.Y, e.Z))
		return largest / 2 * ExtentPadding, nil
	case ObjectMarker:
		return 0, fmt.Errorf("extent of %v: %w", obj.Kind(), ErrUnsupportedTarget)
	default:
		return 0, fmt.Errorf("extent of %v: %w", obj.Kind(), ErrUnsupportedTarget)
	}
}

// ClampToScreen clamps a box's top-left corner so the box stays horizontally
// within the screen (with margin on both sides) and vertically within
// [0, screenHeight - height - margin]. Used for caption placement only; the
// spotlight shape itself is allowed to run off-screen.
func ClampToScreen(pos, size, screen Vec2, margin float64) Vec2 {
	maxX := screen.X - size.X - margin
	maxY := screen.Y - size.Y - margin
	return Vec2{
		X: math.Max(margin, math.Min(pos.X, maxX)),
		Y: math.Max(0, math.Min(pos.Y, maxY)),
	}
}

// HintPosition places a caption box below a spotlight: horizontally centered
// on the spotlight's center, top edge a fixed offset below the spotlight's
// bottom edge, clamped to stay on screen.
func HintPosition(spotPos, spotSize, hintSize, screen Vec2) Vec2 {
	pos := Vec2{
		X: spotPos.X + spotSize.X/2 - hintSize.X/2,
		Y: spotPos.Y + spotSize.Y + hintOffset,
	}
	return ClampToScreen(pos, hintSize, screen, hintMargin)
}
