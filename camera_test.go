package limelight

import (
	"math"
	"testing"
)

func TestPerspectiveCameraProjectsCenter(t *testing.T) {
	cam := NewPerspectiveCamera(Vec2{640, 480}, math.Pi/2)

	screen, depth, on := cam.Project(Vec3{Z: 10})

	if !on {
		t.Fatal("point straight ahead should be on screen")
	}
	if math.Abs(depth-10) > 1e-9 {
		t.Errorf("depth = %f, want 10", depth)
	}
	if math.Abs(screen.X-320) > 1e-6 || math.Abs(screen.Y-240) > 1e-6 {
		t.Errorf("screen = %+v, want viewport center (320, 240)", screen)
	}
}

func TestPerspectiveCameraVerticalScale(t *testing.T) {
	// fov pi/2 -> focal length = viewportH/2 = 240 px.
	cam := NewPerspectiveCamera(Vec2{640, 480}, math.Pi/2)

	screen, _, _ := cam.Project(Vec3{Y: 5, Z: 10})

	// 5 world units up at depth 10 -> 120 px above center.
	if math.Abs(screen.Y-120) > 1e-6 {
		t.Errorf("screen.Y = %f, want 120", screen.Y)
	}
}

func TestPerspectiveCameraBehindCamera(t *testing.T) {
	cam := NewPerspectiveCamera(Vec2{640, 480}, math.Pi/2)

	_, depth, on := cam.Project(Vec3{Z: -5})

	if on {
		t.Error("point behind the camera reported on screen")
	}
	if depth >= 0 {
		t.Errorf("depth = %f, want negative", depth)
	}
}

func TestPerspectiveCameraOffScreen(t *testing.T) {
	cam := NewPerspectiveCamera(Vec2{640, 480}, math.Pi/2)

	// Far off to the right at shallow depth.
	_, depth, on := cam.Project(Vec3{X: 100, Z: 1})

	if on {
		t.Error("far-right point reported on screen")
	}
	if depth <= 0 {
		t.Errorf("depth = %f, want positive (in front, just off-screen)", depth)
	}
}

func TestPerspectiveCameraLookAt(t *testing.T) {
	cam := NewPerspectiveCamera(Vec2{640, 480}, math.Pi/2)
	cam.LookAt(Vec3{X: 1})

	screen, depth, on := cam.Project(Vec3{X: 7})

	if !on {
		t.Fatal("point along the view direction should be on screen")
	}
	if math.Abs(depth-7) > 1e-9 {
		t.Errorf("depth = %f, want 7", depth)
	}
	if math.Abs(screen.X-320) > 1e-6 || math.Abs(screen.Y-240) > 1e-6 {
		t.Errorf("screen = %+v, want viewport center", screen)
	}
}

func TestPerspectiveCameraMarkDirtyAfterMove(t *testing.T) {
	cam := NewPerspectiveCamera(Vec2{640, 480}, math.Pi/2)
	_, _, _ = cam.Project(Vec3{Z: 10}) // prime the cached basis

	cam.Position = Vec3{Z: 5}
	cam.LookAt(Vec3{Z: 20})
	cam.MarkDirty()

	_, depth, _ := cam.Project(Vec3{Z: 10})
	if math.Abs(depth-5) > 1e-9 {
		t.Errorf("depth = %f after moving camera, want 5", depth)
	}
}
