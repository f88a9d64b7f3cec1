package limelight

import "math"

// ViewContext supplies the camera state the projector consults. It is
// read-only shared state owned by the host; a Spotlight only ever reads it.
// Pass one explicitly at construction — limelight keeps no process-wide
// camera reference.
type ViewContext interface {
	// Project converts a world-space point to screen coordinates and depth
	// along the view direction. onScreen is false when the point is behind
	// the camera (depth <= 0) or projects outside the viewport.
	Project(p Vec3) (screen Vec2, depth float64, onScreen bool)

	// FOV returns the vertical field of view in radians.
	FOV() float64

	// ViewportSize returns the viewport dimensions in pixels.
	ViewportSize() Vec2
}

// PerspectiveCamera is a pinhole-model ViewContext: a position, a look
// target, and a vertical field of view. It does not account for lens
// distortion.
//
// The orthonormal view basis is cached and recomputed lazily; call MarkDirty
// after mutating Position directly.
type PerspectiveCamera struct {
	// Position is the camera's world-space location.
	Position Vec3
	// Fov is the vertical field of view in radians.
	Fov float64
	// Viewport is the output size in pixels.
	Viewport Vec2

	target  Vec3
	worldUp Vec3

	forward, right, up Vec3
	dirty              bool
}

// NewPerspectiveCamera creates a camera at the origin looking down +Z with
// the given viewport and vertical field of view.
func NewPerspectiveCamera(viewport Vec2, fov float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Fov:      fov,
		Viewport: viewport,
		target:   Vec3{Z: 1},
		worldUp:  Vec3{Y: 1},
		dirty:    true,
	}
}

// LookAt aims the camera at a world-space point.
func (c *PerspectiveCamera) LookAt(target Vec3) {
	c.target = target
	c.dirty = true
}

// MarkDirty forces a recomputation of the view basis. Call after assigning
// Position directly.
func (c *PerspectiveCamera) MarkDirty() {
	c.dirty = true
}

// computeBasis recomputes the cached orthonormal basis if dirty.
func (c *PerspectiveCamera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.forward = c.target.Sub(c.Position).Normalized()
	if c.forward.Length() == 0 {
		c.forward = Vec3{Z: 1}
	}
	c.right = c.worldUp.Cross(c.forward).Normalized()
	if c.right.Length() == 0 {
		// Looking straight along worldUp; pick an arbitrary right.
		c.right = Vec3{X: 1}
	}
	c.up = c.forward.Cross(c.right)
}

// Project implements ViewContext.
func (c *PerspectiveCamera) Project(p Vec3) (Vec2, float64, bool) {
	c.computeBasis()

	rel := p.Sub(c.Position)
	depth := rel.Dot(c.forward)
	if depth <= 0 {
		return Vec2{}, depth, false
	}

	// Focal length in pixels from the vertical field of view.
	f := (c.Viewport.Y / 2) / math.Tan(c.Fov/2)
	sx := c.Viewport.X/2 + rel.Dot(c.right)*f/depth
	sy := c.Viewport.Y/2 - rel.Dot(c.up)*f/depth

	onScreen := sx >= 0 && sx <= c.Viewport.X && sy >= 0 && sy <= c.Viewport.Y
	return Vec2{sx, sy}, depth, onScreen
}

// FOV implements ViewContext.
func (c *PerspectiveCamera) FOV() float64 {
	return c.Fov
}

// ViewportSize implements ViewContext.
func (c *PerspectiveCamera) ViewportSize() Vec2 {
	return c.Viewport
}
