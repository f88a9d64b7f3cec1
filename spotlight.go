package limelight

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Fixed easing profiles. Movement glides out, fades and the shape
// transition use the same profile.
var (
	easeMove  = ease.OutQuad
	easeFade  = ease.OutQuad
	easeShape = ease.OutQuad
)

// trackingKey is the janitor key for the single object-tracking slot.
const trackingKey = "tracking"

// State describes a Spotlight's coarse lifecycle state.
type State uint8

const (
	StateHidden State = iota
	StateShowing
	StateFollowing
)

// SpotlightConfig configures a new Spotlight. View and Surface are
// required; the zero Timing means DefaultTiming.
type SpotlightConfig struct {
	View    ViewContext
	Surface Surface
	// Insets is the host safe-area inset, captured once here and applied to
	// focused UI elements that do not ignore it.
	Insets Insets
	Timing Timing
	// Shape is the initial cutout shape. The zero value is ShapeCircle.
	Shape Shape
}

// Spotlight owns one darkened-overlay highlight: its shape, geometry and
// pulse drivers, visibility, and at most one object-tracking subscription.
// All focus operations set targets; the actual rendered values are produced
// by Update, which the host calls once per frame.
//
// Focus operations return the Spotlight for chaining. A Spotlight must not
// be shared across goroutines; the whole engine is single-threaded and
// frame-driven.
type Spotlight struct {
	view    ViewContext
	surface Surface
	insets  Insets
	timing  Timing

	shape    Shape
	geometry *RegionDriver
	pulse    *ScalarDriver
	overlay  *ScalarDriver
	corner   *ScalarDriver
	pulser   *pulser

	caption  string
	tracking func()

	active    bool
	destroyed bool
	// hideDelay counts down to the deferred surface disable after Hide;
	// negative means no disable is pending.
	hideDelay float32

	janitor *Janitor
}

// NewSpotlight creates a hidden spotlight. Panics if View or Surface is nil.
func NewSpotlight(cfg SpotlightConfig) *Spotlight {
	if cfg.View == nil {
		panic("limelight: SpotlightConfig.View is required")
	}
	if cfg.Surface == nil {
		panic("limelight: SpotlightConfig.Surface is required")
	}
	if cfg.Timing == (Timing{}) {
		cfg.Timing = DefaultTiming()
	}

	s := &Spotlight{
		view:      cfg.View,
		surface:   cfg.Surface,
		insets:    cfg.Insets,
		timing:    cfg.Timing,
		shape:     cfg.Shape,
		geometry:  NewRegionDriver(Rect{}),
		pulse:     NewScalarDriver(0),
		overlay:   NewScalarDriver(0),
		corner:    NewScalarDriver(0),
		hideDelay: -1,
		janitor:   NewJanitor(),
	}
	s.pulser = newPulser(s.pulse, func() bool { return s.active }, cfg.Timing.PulseHalfPeriod)

	if cfg.Shape == ShapeCircle {
		s.corner.Set(1)
	}
	s.surface.SetEnabled(false)
	s.surface.SetShape(s.shape)
	s.surface.SetRoundness(s.corner.Current())

	s.janitor.Track(s.surface.Dispose)
	s.janitor.Track(s.pulser.Disable)
	return s
}

// State returns the coarse lifecycle state.
func (s *Spotlight) State() State {
	switch {
	case !s.active:
		return StateHidden
	case s.tracking != nil:
		return StateFollowing
	default:
		return StateShowing
	}
}

// Active reports whether the spotlight is shown and updating.
func (s *Spotlight) Active() bool {
	return s.active
}

// Shape returns the current cutout shape.
func (s *Spotlight) Shape() Shape {
	return s.shape
}

// Show activates the spotlight and fades the overlay in. It does not set a
// target; shown before any focus call, the overlay appears over the last
// (or default) geometry.
func (s *Spotlight) Show() *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "Show")
	}
	s.active = true
	s.hideDelay = -1
	s.surface.SetEnabled(true)
	s.overlay.AnimateTo(OverlayAlpha, s.timing.Fade, easeFade)
	return s
}

// Hide deactivates the spotlight immediately: tracking is canceled, the
// pulse is disabled, and the overlay fades out. Once the fade elapses the
// surface is disabled entirely — a deferred action that Destroy or a new
// Show cancels, so it never fires against torn-down state.
func (s *Spotlight) Hide() *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "Hide")
	}
	s.active = false
	s.janitor.Release(trackingKey)
	s.pulser.Disable()
	s.overlay.AnimateTo(0, s.timing.Fade, easeFade)
	s.hideDelay = s.timing.Fade
	return s
}

// FocusUI frames an on-screen element, canceling any object tracking.
//
// The box math is shape-dependent: for ShapeCircle the region is a square
// of side max(width, height) + 2*padding centered over the element; for
// other shapes it is the element's size grown by padding on every edge,
// anchored at position - padding. The safe-area inset captured at
// construction is added unless the element ignores insets.
func (s *Spotlight) FocusUI(elem UIElement, padding float64, text string) *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "FocusUI")
	}
	s.janitor.Release(trackingKey)

	pos := elem.AbsolutePosition()
	size := elem.Size()
	if !elem.IgnoresSafeInsets() {
		pos.Y += s.insets.Top
	}

	var box Rect
	if s.shape == ShapeCircle {
		side := math.Max(size.X, size.Y) + 2*padding
		center := Vec2{pos.X + size.X/2, pos.Y + size.Y/2}
		box = Rect{center.X - side/2, center.Y - side/2, side, side}
	} else {
		box = Rect{pos.X - padding, pos.Y - padding, size.X + 2*padding, size.Y + 2*padding}
	}

	s.surface.SetVisible(true)
	s.geometry.AnimateTo(box, s.timing.Move, easeMove)
	s.setCaption(text)
	return s
}

// FocusWorld frames a world-space point with a world-space radius. If the
// point is behind the camera or off-screen the shape is hidden and the
// geometry target is left untouched; the spotlight stays active. The call
// is idempotent per input and safe to repeat every frame — FollowObject
// relies on exactly that.
func (s *Spotlight) FocusWorld(pos Vec3, radius float64, text string) *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "FocusWorld")
	}
	screen, visible := WorldToScreen(s.view, pos)
	if !visible {
		s.surface.SetVisible(false)
		return s
	}

	px := WorldRadiusToPixels(s.view, pos, radius)
	box := Rect{screen.X - px, screen.Y - px, 2 * px, 2 * px}

	s.surface.SetVisible(true)
	s.geometry.AnimateTo(box, s.timing.Move, easeMove)
	s.setCaption(text)
	return s
}

// FollowObject tracks a moving object, reprojecting it every frame. The
// previous tracking subscription, if any, is torn down first — a spotlight
// never holds more than one. Objects without a defined extent fail with
// ErrUnsupportedTarget and leave the display state unchanged.
//
// If the object is disposed mid-tracking, the frame update becomes a no-op
// and the spotlight freezes at its last geometry.
func (s *Spotlight) FollowObject(obj TrackedObject, text string) error {
	if globalDebug {
		debugCheckDestroyed(s, "FollowObject")
	}
	if _, err := ExtentOf(obj); err != nil {
		return fmt.Errorf("follow object: %w", err)
	}

	s.surface.SetVisible(true)
	s.janitor.TrackKeyed(trackingKey, func() { s.tracking = nil })
	s.tracking = func() {
		if obj.IsDisposed() {
			return
		}
		radius, err := ExtentOf(obj)
		if err != nil {
			return
		}
		s.FocusWorld(obj.Position(), radius, text)
	}
	return nil
}

// SetShape records the cutout shape and starts the corner-rounding
// transition. Position and size targets are unaffected.
func (s *Spotlight) SetShape(shape Shape) *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "SetShape")
	}
	s.shape = shape
	s.surface.SetShape(shape)
	round := 0.0
	if shape == ShapeCircle {
		round = 1
	}
	s.corner.AnimateTo(round, s.timing.Shape, easeShape)
	return s
}

// Pulse starts the periodic size oscillation with the given amplitude in
// pixels. No-op if already pulsing.
func (s *Spotlight) Pulse(amount float64) *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "Pulse")
	}
	s.pulser.Enable(amount)
	return s
}

// StopPulse stops the oscillation and snaps the pulse offset to 0.
func (s *Spotlight) StopPulse() *Spotlight {
	if globalDebug {
		debugCheckDestroyed(s, "StopPulse")
	}
	s.pulser.Disable()
	return s
}

// Update advances animations by dt seconds and performs the per-frame
// layout step: tracking reprojects its target, the drivers tick, and the
// sampled geometry (grown symmetrically by the pulse offset) is written to
// the surface along with the caption position. This is the only place the
// rendered position and size change.
func (s *Spotlight) Update(dt float32) {
	if s.destroyed {
		return
	}

	if s.active {
		if s.tracking != nil {
			s.tracking()
		}
		s.pulser.update(dt)
	}

	s.overlay.Update(dt)
	s.geometry.Update(dt)
	s.pulse.Update(dt)
	s.corner.Update(dt)

	s.surface.SetOverlayAlpha(s.overlay.Current())

	if s.hideDelay >= 0 {
		s.hideDelay -= dt
		if s.hideDelay <= 0 {
			s.hideDelay = -1
			s.surface.SetEnabled(false)
		}
	}

	if !s.active {
		return
	}

	r := s.geometry.Current()
	off := s.pulse.Current()
	box := Rect{r.X - off/2, r.Y - off/2, r.Width + off, r.Height + off}
	s.surface.SetRegion(box)
	s.surface.SetRoundness(s.corner.Current())

	if s.caption != "" {
		hint := s.surface.CaptionSize()
		pos := HintPosition(Vec2{box.X, box.Y}, Vec2{box.Width, box.Height}, hint, s.view.ViewportSize())
		s.surface.SetCaptionPosition(pos)
	}
}

// Destroy synchronously releases every resource the spotlight owns:
// tracking subscription, pulse loop, and the surface, in reverse
// acquisition order. Idempotent; any other use after Destroy is undefined.
func (s *Spotlight) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.active = false
	s.hideDelay = -1
	s.tracking = nil
	s.janitor.ReleaseAll()
	debugf("spotlight destroyed")
}

// setCaption stores the caption text and pushes it to the surface.
func (s *Spotlight) setCaption(text string) {
	s.caption = text
	s.surface.SetCaption(text)
}
