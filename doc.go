// Package limelight is a guided-focus ("spotlight") engine for [Ebitengine].
//
// Limelight darkens the screen around a shape to draw the player's eye to a
// UI element, a world-space point, or a moving 3D object, and can chain a
// sequence of such focuses into a multi-step tutorial.
//
// # Quick start
//
// Create a [Spotlight] with a camera and a surface, then focus things:
//
//	surface := limelight.NewCanvasSurface(640, 480)
//	camera := limelight.NewPerspectiveCamera(limelight.Vec2{X: 640, Y: 480}, math.Pi/3)
//
//	spot := limelight.NewSpotlight(limelight.SpotlightConfig{
//		View:    camera,
//		Surface: surface,
//	})
//	spot.Show().FocusWorld(limelight.Vec3{X: 2, Z: 10}, 1.5, "Mine this ore")
//
// Drive it from your game loop: call [Spotlight.Update] once per frame in
// Update and [CanvasSurface.Draw] in Draw.
//
// # Targets
//
// Three target kinds are supported:
//
//   - [Spotlight.FocusUI] frames an on-screen element (anything implementing
//     [UIElement]) with optional padding.
//   - [Spotlight.FocusWorld] projects a world point and radius through the
//     camera. Off-screen points hide the shape instead of erroring.
//   - [Spotlight.FollowObject] re-projects a moving [TrackedObject] every
//     frame, freezing in place if the object is disposed.
//
// Geometry changes glide via tweens ([gween]); the rendered box is sampled
// per frame, so retargeting mid-animation picks up from wherever the
// previous animation had reached.
//
// # Guides
//
// A [Guide] binds an ordered [Step] list to a spotlight and walks it with
// [Guide.Advance], broadcasting StepCompleted and SequenceCompleted events.
// Step lists can be built in code or loaded from JSON with
// [LoadGuideScript].
//
// Everything is single-threaded and frame-driven; no limelight type is safe
// for concurrent use.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package limelight
